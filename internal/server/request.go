package server

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jpsleep/sleepcheck/internal/features"
)

// assessRequest is the body of POST /api/v1/assessments. Every field is
// required; range checks stay in features.Validate so the API and the
// form report the same bound errors.
type assessRequest struct {
	Age              *int                 `json:"age" binding:"required"`
	Gender           *features.Gender     `json:"gender" binding:"required"`
	Occupation       *features.Occupation `json:"occupation" binding:"required"`
	HeightCm         *int                 `json:"height_cm" binding:"required"`
	WeightKg         *int                 `json:"weight_kg" binding:"required"`
	SleepDuration    *float64             `json:"sleep_duration_hours" binding:"required"`
	QualityOfSleep   *int                 `json:"quality_of_sleep" binding:"required"`
	PhysicalActivity *int                 `json:"physical_activity_level" binding:"required"`
	StressLevel      *int                 `json:"stress_level" binding:"required"`
	HeartRate        *int                 `json:"heart_rate_bpm" binding:"required"`
	DailySteps       *int                 `json:"daily_steps" binding:"required"`
	Systolic         *int                 `json:"systolic_mmhg" binding:"required"`
	Diastolic        *int                 `json:"diastolic_mmhg" binding:"required"`
}

func (r assessRequest) inputs() features.RawInputs {
	return features.RawInputs{
		Age:              *r.Age,
		Gender:           *r.Gender,
		Occupation:       *r.Occupation,
		HeightCm:         *r.HeightCm,
		WeightKg:         *r.WeightKg,
		SleepDuration:    *r.SleepDuration,
		QualityOfSleep:   *r.QualityOfSleep,
		PhysicalActivity: *r.PhysicalActivity,
		StressLevel:      *r.StressLevel,
		HeartRate:        *r.HeartRate,
		DailySteps:       *r.DailySteps,
		Systolic:         *r.Systolic,
		Diastolic:        *r.Diastolic,
	}
}

// requestError is a malformed body: bad JSON, an unknown key or missing
// fields. Missing holds the JSON names of absent fields in struct order.
type requestError struct {
	Missing []string
	Err     error
}

func (e *requestError) Error() string {
	if len(e.Missing) > 0 {
		return "missing required field(s): " + strings.Join(e.Missing, ", ")
	}
	return "invalid request body: " + e.Err.Error()
}

func (e *requestError) Unwrap() error { return e.Err }

// bindStrict decodes the body rejecting unknown keys, then runs gin's
// validator so binding:"required" tags apply.
func bindStrict(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty body")
		}
		return &requestError{Err: err}
	}
	if dec.More() {
		return &requestError{Err: errors.New("trailing data after JSON object")}
	}

	if err := binding.Validator.ValidateStruct(dst); err != nil {
		var fields validator.ValidationErrors
		if !errors.As(err, &fields) {
			return &requestError{Err: err}
		}
		t := reflect.TypeOf(dst).Elem()
		missing := make([]string, 0, len(fields))
		for _, fe := range fields {
			missing = append(missing, jsonName(t, fe.StructField()))
		}
		return &requestError{Missing: missing, Err: err}
	}
	return nil
}

func jsonName(t reflect.Type, field string) string {
	sf, ok := t.FieldByName(field)
	if !ok {
		return field
	}
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" {
		return field
	}
	return name
}

func requestErrorBody(err *requestError) gin.H {
	body := gin.H{"error": err.Error()}
	if len(err.Missing) > 0 {
		body["fields"] = err.Missing
	}
	return body
}
