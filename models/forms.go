package models

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/smadsen/powerium/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginForm is the validated payload of a POST /login submission.
type LoginForm struct {
	Email    string
	Password string
}

// ParseLoginForm reads a login submission from the request body.
// The returned problems list is empty for a valid submission.
func ParseLoginForm(r *http.Request) (*LoginForm, []string) {
	f := &LoginForm{
		Email:    strings.ToLower(utils.FormValue(r, "email")),
		Password: r.PostFormValue("password"),
	}

	var problems []string
	if f.Email == "" {
		problems = append(problems, "Email is required")
	}
	if f.Password == "" {
		problems = append(problems, "Password is required")
	}
	return f, problems
}

// RegisterForm is the validated payload of a POST /register submission.
type RegisterForm struct {
	Name     string
	Email    string
	Password string
}

// ParseRegisterForm reads a registration submission from the request body.
func ParseRegisterForm(r *http.Request) (*RegisterForm, []string) {
	f := &RegisterForm{
		Name:     utils.FormValue(r, "name"),
		Email:    strings.ToLower(utils.FormValue(r, "email")),
		Password: r.PostFormValue("password"),
	}

	var problems []string
	if f.Name == "" {
		problems = append(problems, "Name is required")
	}
	if f.Email == "" {
		problems = append(problems, "Email is required")
	} else if !strings.Contains(f.Email, "@") {
		problems = append(problems, "Email address is not valid")
	}
	if f.Password == "" {
		problems = append(problems, "Password is required")
	}
	return f, problems
}

// UsageForm is the validated payload of a POST /inputs submission.
// Choice fields carry the option selected in the form; the remaining
// fields are numeric readings entered by the user.
type UsageForm struct {
	LightingType        string
	NaturalLightUse     string
	TintUse             string
	ThermostatType      string
	SmartPlugUse        string
	WaterHeaterTemp     int
	SinkUsage           int
	ShowerLength        int
	AirConditioningTemp int
	EatingOutCount      int
}

// ParseUsageForm reads a usage submission from the request body and
// validates every field before any store operation happens.
func ParseUsageForm(r *http.Request) (*UsageForm, []string) {
	f := &UsageForm{
		LightingType:    utils.FormValue(r, "lightType"),
		NaturalLightUse: utils.FormValue(r, "natType"),
		TintUse:         utils.FormValue(r, "tintUse"),
		ThermostatType:  utils.FormValue(r, "thermoType"),
		SmartPlugUse:    utils.FormValue(r, "plugType"),
	}

	var problems []string
	choices := []struct {
		label string
		value string
	}{
		{"Lighting type", f.LightingType},
		{"Natural light use", f.NaturalLightUse},
		{"Window tint use", f.TintUse},
		{"Thermostat type", f.ThermostatType},
		{"Smart plug use", f.SmartPlugUse},
	}
	for _, c := range choices {
		if c.value == "" {
			problems = append(problems, c.label+" is required")
		}
	}

	numeric := []struct {
		field    string
		label    string
		dest     *int
		min, max int
	}{
		{"waterTemp", "Water heater temperature", &f.WaterHeaterTemp, 80, 160},
		{"sinkUsage", "Sink usage", &f.SinkUsage, 0, 1440},
		{"showerLength", "Shower length", &f.ShowerLength, 0, 240},
		{"airConditioningTemp", "Air conditioning temperature", &f.AirConditioningTemp, 50, 100},
		{"eatingOut", "Eating out count", &f.EatingOutCount, 0, 100},
	}
	for _, n := range numeric {
		v, ok := utils.FormInt(r, n.field)
		if !ok {
			problems = append(problems, n.label+" must be a number")
			continue
		}
		if v < n.min || v > n.max {
			problems = append(problems, fmt.Sprintf("%s must be between %d and %d", n.label, n.min, n.max))
			continue
		}
		*n.dest = v
	}
	return f, problems
}

// Record builds the UsageRecord a valid submission persists for the
// given owner. DateCreated is stamped by the repository at insert time.
func (f *UsageForm) Record(userID primitive.ObjectID) *UsageRecord {
	return &UsageRecord{
		UserID:              userID,
		LightingType:        f.LightingType,
		NaturalLightUse:     f.NaturalLightUse,
		TintUse:             f.TintUse,
		ThermostatType:      f.ThermostatType,
		SmartPlugUse:        f.SmartPlugUse,
		WaterHeaterTemp:     f.WaterHeaterTemp,
		SinkUsage:           f.SinkUsage,
		ShowerLength:        f.ShowerLength,
		AirConditioningTemp: f.AirConditioningTemp,
		EatingOutCount:      f.EatingOutCount,
	}
}
