// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jpsleep/sleepcheck/ent/assessmentevent"
	"github.com/jpsleep/sleepcheck/ent/llmrequestevent"
	"github.com/jpsleep/sleepcheck/ent/reportevent"
	"github.com/jpsleep/sleepcheck/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescAssessmentID is the schema descriptor for assessment_id field.
	assessmenteventDescAssessmentID := assessmenteventFields[0].Descriptor()
	// assessmentevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessmentevent.AssessmentIDValidator = assessmenteventDescAssessmentID.Validators[0].(func(string) error)
	// assessmenteventDescLatencyUs is the schema descriptor for latency_us field.
	assessmenteventDescLatencyUs := assessmenteventFields[8].Descriptor()
	// assessmentevent.DefaultLatencyUs holds the default value on creation for the latency_us field.
	assessmentevent.DefaultLatencyUs = assessmenteventDescLatencyUs.Default.(int64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	reporteventMixin := schema.ReportEvent{}.Mixin()
	reporteventMixinFields0 := reporteventMixin[0].Fields()
	_ = reporteventMixinFields0
	reporteventFields := schema.ReportEvent{}.Fields()
	_ = reporteventFields
	// reporteventDescTimestamp is the schema descriptor for timestamp field.
	reporteventDescTimestamp := reporteventMixinFields0[1].Descriptor()
	// reportevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reportevent.DefaultTimestamp = reporteventDescTimestamp.Default.(func() time.Time)
	// reporteventDescAssessmentID is the schema descriptor for assessment_id field.
	reporteventDescAssessmentID := reporteventFields[0].Descriptor()
	// reportevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	reportevent.AssessmentIDValidator = reporteventDescAssessmentID.Validators[0].(func(string) error)
	// reporteventDescSizeBytes is the schema descriptor for size_bytes field.
	reporteventDescSizeBytes := reporteventFields[3].Descriptor()
	// reportevent.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	reportevent.DefaultSizeBytes = reporteventDescSizeBytes.Default.(int)
	// reporteventDescErrorMessage is the schema descriptor for error_message field.
	reporteventDescErrorMessage := reporteventFields[5].Descriptor()
	// reportevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	reportevent.DefaultErrorMessage = reporteventDescErrorMessage.Default.(string)
}
