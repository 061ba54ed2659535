package password

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	// Cost factor de bcrypt. Fijo en 10 para mantener compatibilidad con
	// hashes ya persistidos.
	hashCost = 10

	minLength    = 8
	specialChars = `!@#$%^&*(),.?":{}|<>`
)

// ErrInvalid es el error base de política de contraseñas. Todos los fallos
// de Validate responden true a errors.Is(err, ErrInvalid).
var ErrInvalid = errors.New("contraseña inválida")

var (
	ErrEmpty       = fmt.Errorf("%w: no debe ser vacía o nula", ErrInvalid)
	ErrTooShort    = fmt.Errorf("%w: debe contener al menos %d caracteres", ErrInvalid, minLength)
	ErrNoUppercase = fmt.Errorf("%w: debe contener al menos una letra mayúscula", ErrInvalid)
	ErrNoDigit     = fmt.Errorf("%w: debe contener al menos un número", ErrInvalid)
	ErrNoSpecial   = fmt.Errorf("%w: debe contener al menos un carácter especial", ErrInvalid)
)

// Validate aplica la política de contraseñas en orden fijo y devuelve el
// primer fallo (no agrega todos los incumplimientos):
// vacía, longitud mínima, mayúscula, número, carácter especial.
func Validate(pw string) error {
	if pw == "" {
		return ErrEmpty
	}
	// Longitud en runas, no en bytes: una contraseña con caracteres
	// multibyte cuenta cada carácter una vez.
	if utf8.RuneCountInString(pw) < minLength {
		return ErrTooShort
	}
	if !strings.ContainsFunc(pw, unicode.IsUpper) {
		return ErrNoUppercase
	}
	if !strings.ContainsFunc(pw, unicode.IsDigit) {
		return ErrNoDigit
	}
	if !strings.ContainsAny(pw, specialChars) {
		return ErrNoSpecial
	}
	return nil
}

// Hash valida la contraseña y devuelve su hash bcrypt (salted, cost 10).
// El string resultante embebe salt y parámetros; el texto plano nunca se
// persiste. Propaga los errores de Validate.
func Hash(pw string) (string, error) {
	if err := Validate(pw); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), hashCost)
	if err != nil {
		return "", fmt.Errorf("generar hash: %w", err)
	}
	return string(hash), nil
}

// Compare verifica en tiempo constante que plain corresponde al hash.
// Una contraseña incorrecta devuelve false, nunca error.
func Compare(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
