package initializers

import (
	"fmt"

	"github.com/bekosher/bekosher-api/services"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ConfigureBinding makes gin reject unknown JSON fields and adds the custom
// binding rules to its validator.
func ConfigureBinding() error {
	binding.EnableDecoderDisallowUnknownFields = true

	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return engine.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return services.IsClock(fl.Field().String())
	})
}
