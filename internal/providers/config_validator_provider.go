package providers

import (
	"cpstat/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	sections := []interface{}{
		&cv.conf.Storage,
		&cv.conf.Cache,
		&cv.conf.Fetch,
		&cv.conf.Logger,
	}
	for _, section := range sections {
		v := validate.Struct(section)
		if !v.Validate() {
			return v.Errors.OneError()
		}
	}
	return nil
}
