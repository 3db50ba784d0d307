package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	spectrumerrors "github.com/alexisbeaulieu97/spectrum/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern     = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	presetNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator. Field names
// in errors come from yaml tags.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("preset_name", func(fl validator.FieldLevel) bool {
			return presetNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidatePresets performs schema and cross-field validation on a presets file.
func ValidatePresets(file *File) error {
	if file == nil {
		return spectrumerrors.NewValidationError("presets", "presets file is nil", nil)
	}

	if err := validatorInstance().Struct(file); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(file.Presets))
	for i, p := range file.Presets {
		if first, ok := seen[p.Name]; ok {
			return spectrumerrors.NewValidationError(
				fieldForPreset(i, "name"),
				fmt.Sprintf("duplicate preset name %q (first defined at presets[%d])", p.Name, first),
				nil,
			)
		}
		seen[p.Name] = i
	}

	if file.Default != "" {
		if _, ok := seen[file.Default]; !ok {
			return spectrumerrors.NewValidationError("default", fmt.Sprintf("references unknown preset %q", file.Default), nil)
		}
	}

	return nil
}

// ValidatePreset validates a single preset, for presets built outside a file.
func ValidatePreset(p Preset) error {
	if err := validatorInstance().Struct(p); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return spectrumerrors.NewValidationError(field, msg, err)
	}

	return spectrumerrors.NewValidationError("presets", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace, leaving a path
// such as presets[1].hue.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return strings.ToLower(ns)
}

func fieldForPreset(index int, field string) string {
	return fmt.Sprintf("presets[%d].%s", index, field)
}
