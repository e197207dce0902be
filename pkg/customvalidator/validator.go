package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"support-it/pkg/constants"
)

// RegisterCustomValidations enregistre les règles propres au métier sur
// l'instance de validateur partagée.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("type_demande", isTypeDemande); err != nil {
		return err
	}
	if err := v.RegisterValidation("priorite", isPriorite); err != nil {
		return err
	}
	if err := v.RegisterValidation("service_interne", isServiceInterne); err != nil {
		return err
	}
	return nil
}

func isTypeDemande(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == constants.TypeIncident || s == constants.TypeOrder
}

func isPriorite(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.PriorityBasse, constants.PriorityMoyenne, constants.PriorityUrgente:
		return true
	}
	return false
}

// Les services contiennent espaces et accents, hors de portée d'un `oneof`.
func isServiceInterne(fl validator.FieldLevel) bool {
	return constants.IsValidService(fl.Field().String())
}
