// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhilash/crammer/ent/answerevent"
	"github.com/abhilash/crammer/ent/schema"
	"github.com/abhilash/crammer/ent/testevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescTestID is the schema descriptor for test_id field.
	answereventDescTestID := answereventFields[0].Descriptor()
	// answerevent.TestIDValidator is a validator for the "test_id" field. It is called by the builders before save.
	answerevent.TestIDValidator = answereventDescTestID.Validators[0].(func(string) error)
	// answereventDescCardID is the schema descriptor for card_id field.
	answereventDescCardID := answereventFields[1].Descriptor()
	// answerevent.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	answerevent.CardIDValidator = answereventDescCardID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[2].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[3].Descriptor()
	// answerevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	answerevent.PromptValidator = answereventDescPrompt.Validators[0].(func(string) error)
	// answereventDescExpected is the schema descriptor for expected field.
	answereventDescExpected := answereventFields[4].Descriptor()
	// answerevent.ExpectedValidator is a validator for the "expected" field. It is called by the builders before save.
	answerevent.ExpectedValidator = answereventDescExpected.Validators[0].(func(string) error)
	// answereventDescSkipped is the schema descriptor for skipped field.
	answereventDescSkipped := answereventFields[7].Descriptor()
	// answerevent.DefaultSkipped holds the default value on creation for the skipped field.
	answerevent.DefaultSkipped = answereventDescSkipped.Default.(bool)
	// answereventDescOverridden is the schema descriptor for overridden field.
	answereventDescOverridden := answereventFields[8].Descriptor()
	// answerevent.DefaultOverridden holds the default value on creation for the overridden field.
	answerevent.DefaultOverridden = answereventDescOverridden.Default.(bool)
	testeventMixin := schema.TestEvent{}.Mixin()
	testeventMixinFields0 := testeventMixin[0].Fields()
	_ = testeventMixinFields0
	testeventFields := schema.TestEvent{}.Fields()
	_ = testeventFields
	// testeventDescTimestamp is the schema descriptor for timestamp field.
	testeventDescTimestamp := testeventMixinFields0[1].Descriptor()
	// testevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	testevent.DefaultTimestamp = testeventDescTimestamp.Default.(func() time.Time)
	// testeventDescTestID is the schema descriptor for test_id field.
	testeventDescTestID := testeventFields[0].Descriptor()
	// testevent.TestIDValidator is a validator for the "test_id" field. It is called by the builders before save.
	testevent.TestIDValidator = testeventDescTestID.Validators[0].(func(string) error)
	// testeventDescSetID is the schema descriptor for set_id field.
	testeventDescSetID := testeventFields[1].Descriptor()
	// testevent.SetIDValidator is a validator for the "set_id" field. It is called by the builders before save.
	testevent.SetIDValidator = testeventDescSetID.Validators[0].(func(string) error)
	// testeventDescDurationSecs is the schema descriptor for duration_secs field.
	testeventDescDurationSecs := testeventFields[8].Descriptor()
	// testevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	testevent.DefaultDurationSecs = testeventDescDurationSecs.Default.(int)
}
