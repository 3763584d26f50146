package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type SignupForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// FormError lists the fields that failed validation, lower-cased (e.g. "email").
type FormError struct {
	Fields []string
}

func (e *FormError) Error() string {
	return "invalid form fields: " + strings.Join(e.Fields, ", ")
}

var formValidator = validator.New()

func (f *LoginForm) normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

func (f *SignupForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
}

func ValidateLogin(f LoginForm) error {
	f.normalize()
	return validateForm(f)
}

func ValidateSignup(f SignupForm) error {
	f.normalize()
	return validateForm(f)
}

func validateForm(form interface{}) error {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := &FormError{}
	for _, v := range verrs {
		fe.Fields = append(fe.Fields, strings.ToLower(v.Field()))
	}
	return fe
}

// FormDraft collects a form one field per message, as the chat front end asks for them.
type FormDraft struct {
	Kind   Screen // ScreenLogin or ScreenSignup
	fields []string
	values map[string]string
}

func NewFormDraft(kind Screen) *FormDraft {
	fields := []string{"email", "password"}
	if kind == ScreenSignup {
		fields = []string{"name", "email", "password"}
	}
	return &FormDraft{Kind: kind, fields: fields, values: make(map[string]string)}
}

// Next returns the field still waiting for input, or "" when complete.
func (d *FormDraft) Next() string {
	for _, f := range d.fields {
		if _, ok := d.values[f]; !ok {
			return f
		}
	}
	return ""
}

// Fill stores the value for the next pending field and reports whether the draft is complete.
func (d *FormDraft) Fill(value string) bool {
	if f := d.Next(); f != "" {
		d.values[f] = value
	}
	return d.Next() == ""
}

func (d *FormDraft) Login() LoginForm {
	return LoginForm{Email: d.values["email"], Password: d.values["password"]}
}

func (d *FormDraft) Signup() SignupForm {
	return SignupForm{Name: d.values["name"], Email: d.values["email"], Password: d.values["password"]}
}
