package models

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

/*
RegisterWithValidator register with the validator this custom validation support

	@param v *validator.Validate - the validator to register against
	@return whether successful
*/
func RegisterWithValidator(v *validator.Validate) error {
	if err := v.RegisterValidation(
		"use_by_check", validateUseByDateCheckType,
	); err != nil {
		return err
	}

	if err := v.RegisterValidation(
		"document_kind", validateDocumentKind,
	); err != nil {
		return err
	}

	if err := v.RegisterValidation(
		"archive_period", validateArchivePeriodType,
	); err != nil {
		return err
	}

	if err := v.RegisterValidation(
		"archive_state", validateArchiveStateType,
	); err != nil {
		return err
	}

	if err := v.RegisterValidation(
		"archive_event_type", validateArchiveEventType,
	); err != nil {
		return err
	}

	return nil
}

func validateUseByDateCheckType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	switch UseByDateCheckENUMType(fl.Field().String()) {
	case UseByDateNotApplicable:
		fallthrough
	case UseByDateChecked:
		fallthrough
	case UseByDateExpired:
		return true
	}
	return false
}

func validateDocumentKind(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, ok := DocumentKindDescription(fl.Field().String())
	return ok
}

func validateArchivePeriodType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	switch PeriodENUMType(fl.Field().String()) {
	case PeriodYears:
		fallthrough
	case PeriodMonths:
		fallthrough
	case PeriodDays:
		fallthrough
	case PeriodDay:
		fallthrough
	case PeriodAll:
		return true
	}
	return false
}

func validateArchiveStateType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	switch ArchiveStateENUMType(fl.Field().String()) {
	case ArchiveStatePreSeed:
		fallthrough
	case ArchiveStateSeeding:
		fallthrough
	case ArchiveStateReady:
		return true
	}
	return false
}

func validateArchiveEventType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	switch ArchiveEventTypeENUMType(fl.Field().String()) {
	case ArchiveEventTypeSeeding:
		fallthrough
	case ArchiveEventTypeReady:
		fallthrough
	case ArchiveEventTypeAddNewDocument:
		fallthrough
	case ArchiveEventTypeAmendDocument:
		fallthrough
	case ArchiveEventTypeDeleteDocument:
		return true
	}
	return false
}
