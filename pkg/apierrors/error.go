package apierrors

import (
	"github.com/adarshtmg2060/todo-app/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// JsonErr is the JSON body returned on every API error.
type JsonErr struct {
	Message string `json:"error"`
}

// FieldErrs is the JSON body returned when payload validation fails,
// one message per offending field.
type FieldErrs struct {
	Errors map[string]string `json:"errors"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return e.Message
}

// CreateError generates a JsonErr with a translated message.
func CreateError(msgKey string, lang string) JsonErr {
	return JsonErr{Message: GetTransErrorMsg(msgKey, lang)}
}

// CreateFieldErrors translates a field->message-key report into the
// structured validation body.
func CreateFieldErrors(fields map[string]string, lang string) FieldErrs {
	errs := make(map[string]string, len(fields))
	for field, msgKey := range fields {
		errs[field] = GetTransErrorMsg(msgKey, lang)
	}
	return FieldErrs{Errors: errs}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
