package apierrors_test

import (
	"os"
	"testing"

	"github.com/TukaHeba/Task-System/pkg/apierrors"
	"github.com/TukaHeba/Task-System/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	translator.Translator = i18n.NewBundle(language.English)
	if err := translator.Translator.AddMessages(language.English,
		&i18n.Message{ID: "test_key", Other: "Test message"},
		&i18n.Message{ID: "validationRequired", Other: "The {{.Field}} field is required."},
	); err != nil {
		os.Exit(1)
	}
	if err := translator.Translator.AddMessages(language.French,
		&i18n.Message{ID: "test_key", Other: "Message de test"},
	); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(400, "test_key", "en")
	assert.Equal(t, 400, err.ErrDetails.Code)
	assert.Equal(t, "Test message", err.ErrDetails.Message)
	assert.Empty(t, err.ErrDetails.Details)
}

func TestCreateError_Translates(t *testing.T) {
	err := apierrors.CreateError(400, "test_key", "fr")
	assert.Equal(t, "Message de test", err.ErrDetails.Message)
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(500, "test_key", "en")
	assert.Equal(t, "Code: 500, Message: Test message", err.Error())
}

func TestJsonErr_WithField(t *testing.T) {
	err := apierrors.CreateError(400, "test_key", "en").
		WithField("title", "required", "en").
		WithField("status", "custom_rule", "en")

	assert.Equal(t, []apierrors.FieldError{
		{Field: "title", Rule: "required", Message: "The title field is required."},
		{Field: "status", Rule: "custom_rule", Message: "custom_rule"},
	}, err.ErrDetails.Details)
}
