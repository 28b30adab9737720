package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestClassifyIntentNormalizesModelOutput(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"systems", IntentSystems},
		{" Systems. ", IntentSystems},
		{`"learn"`, IntentLearn},
		{"HAS_BROKER", IntentHasBroker},
		{"I think this lead wants to learn", IntentUnknown},
		{"", IntentUnknown},
	}

	for _, tc := range cases {
		chat := new(MockChatClient)
		chat.On("Complete", mock.Anything, mock.Anything, "hola, como invierto?").Return(tc.raw, nil)

		uc := NewClassifyIntentUseCase(chat, new(MockLeadStore))
		out, err := uc.Execute(context.Background(), ClassifyIntentInput{Message: "hola, como invierto?"})

		assert.NoError(t, err)
		assert.Equal(t, tc.want, out.Intent)
		assert.Equal(t, "hola, como invierto?", out.Message)
	}
}

func TestClassifyIntentPersistsWhenLeadIdentified(t *testing.T) {
	chat := new(MockChatClient)
	chat.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("systems", nil)

	leads := new(MockLeadStore)
	leads.On("SetIntent", mock.Anything, "instagram", "ana", IntentSystems).Return(nil)

	uc := NewClassifyIntentUseCase(chat, leads)
	out, err := uc.Execute(context.Background(), ClassifyIntentInput{
		Message: "do you have automated systems?",
		Handle:  "ana",
		Channel: "instagram",
	})

	assert.NoError(t, err)
	assert.Equal(t, IntentSystems, out.Intent)
	leads.AssertExpectations(t)
}

func TestClassifyIntentWithoutKeyDoesNotPersist(t *testing.T) {
	chat := new(MockChatClient)
	chat.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("learn", nil)

	leads := new(MockLeadStore)

	uc := NewClassifyIntentUseCase(chat, leads)
	_, err := uc.Execute(context.Background(), ClassifyIntentInput{Message: "quiero aprender"})

	assert.NoError(t, err)
	leads.AssertNotCalled(t, "SetIntent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClassifyIntentCompletionFailure(t *testing.T) {
	chat := new(MockChatClient)
	chat.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("completion api status 500"))

	uc := NewClassifyIntentUseCase(chat, new(MockLeadStore))
	out, err := uc.Execute(context.Background(), ClassifyIntentInput{Message: "hola"})

	assert.Nil(t, out)
	assert.True(t, IsTechnicalError(err))
	assert.Equal(t, CodeCompletion, err.(*TechnicalError).Code)
}
