package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AlertMailer is the contract for notifying an operator about a hot lead.
type AlertMailer interface {
	SendHotLeadAlert(channel, handle, intent string, score int) error
}

// Worker consumes lead events and turns lead.hot into an operator email.
// Other events are acked and dropped; the queue is for alerts only.
type Worker struct {
	Channel *amqp.Channel
	Mailer  AlertMailer
}

func NewWorker(ch *amqp.Channel, mailer AlertMailer) *Worker {
	return &Worker{Channel: ch, Mailer: mailer}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] consume %s: %s", queueName, err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] malformed event: %s", err)
				// Poison message, reject without requeue.
				d.Nack(false, false)
				continue
			}

			if payload.Event != EventLeadHot {
				d.Ack(false)
				continue
			}

			log.Printf("📥 [WORKER] hot lead %s_%s (score %d)", payload.Channel, payload.Handle, payload.Score)

			if err := w.Mailer.SendHotLeadAlert(payload.Channel, payload.Handle, payload.Intent, payload.Score); err != nil {
				log.Printf("❌ [WORKER] alert email failed: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf("👂 [WORKER] consuming %s", queueName)
	<-forever
}
