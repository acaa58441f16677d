package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pribylovaa/pokedex-service/internal/models"
)

// Границы числовых полей.
const (
	statMax    = 255
	measureMax = 5000
	nameMaxLen = 40
)

var (
	reName     = regexp.MustCompile(`^[a-zA-Z\s-]+$`)
	reImageURL = regexp.MustCompile(`^https?://\S+$`)
	reImageB64 = regexp.MustCompile(`^data:image/(png|svg\+xml);base64,[A-Za-z0-9+/]+={0,2}$`)
)

// ValidatedPokemonInput — нормализованный, проверенный по границам ввод создания.
// Повторная валидация собственного вывода — no-op.
type ValidatedPokemonInput struct {
	Name    string
	Image   *string
	HP      int
	Attack  int
	Defense int
	Speed   int
	Height  int
	Weight  int
	Types   []string
}

// ValidatePokemonInput превращает недоверенную полезную нагрузку в ValidatedPokemonInput.
// Правила применяются по порядку, первая ошибка — итоговая. Без побочных эффектов.
func ValidatePokemonInput(payload map[string]any) (*ValidatedPokemonInput, error) {
	if payload == nil {
		return nil, validationf("payload must be a JSON object")
	}

	name, err := validateName(payload["name"])
	if err != nil {
		return nil, err
	}

	image, err := validateImage(payload["image"])
	if err != nil {
		return nil, err
	}

	out := &ValidatedPokemonInput{Name: name, Image: image}

	stats := []struct {
		key string
		max int
		dst *int
	}{
		{"hp", statMax, &out.HP},
		{"attack", statMax, &out.Attack},
		{"defense", statMax, &out.Defense},
		{"speed", statMax, &out.Speed},
		{"height", measureMax, &out.Height},
		{"weight", measureMax, &out.Weight},
	}
	for _, s := range stats {
		v, err := validateIntField(payload[s.key], s.key, s.max)
		if err != nil {
			return nil, err
		}
		*s.dst = v
	}

	types, err := validateTypes(payload["type"])
	if err != nil {
		return nil, err
	}
	out.Types = types

	return out, nil
}

// validateName: трим, lowercase, непустое, <=40, только буквы/пробелы/дефисы.
func validateName(raw any) (string, error) {
	s, _ := raw.(string)
	name := strings.ToLower(strings.TrimSpace(s))

	if name == "" {
		return "", validationf("name is required")
	}
	if len(name) > nameMaxLen {
		return "", validationf("name must be %d characters or less", nameMaxLen)
	}
	if !reName.MatchString(name) {
		return "", validationf("name can only contain letters, spaces and hyphens")
	}

	return name, nil
}

// validateImage: отсутствует/пусто -> nil; иначе http(s)-URL либо base64 data URI png/svg.
func validateImage(raw any) (*string, error) {
	if raw == nil {
		return nil, nil
	}

	s, ok := raw.(string)
	if !ok {
		return nil, validationf("image must be a string")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if !reImageURL.MatchString(s) && !reImageB64.MatchString(s) {
		return nil, validationf("image must be an http(s) URL or a base64-encoded png/svg data URI")
	}

	return &s, nil
}

// validateIntField: отсутствует/пусто -> 0; строка/число -> целое в [0, max].
func validateIntField(raw any, field string, max int) (int, error) {
	var n int

	switch v := raw.(type) {
	case nil:
		return 0, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return 0, validationf("%s must be an integer", field)
		}
		n = parsed
	case float64:
		// JSON-числа приходят как float64; дробные значения отклоняем.
		if v != math.Trunc(v) {
			return 0, validationf("%s must be an integer", field)
		}
		n = int(v)
	case int:
		n = v
	default:
		return 0, validationf("%s must be an integer", field)
	}

	if n < 0 || n > max {
		return 0, validationf("%s must be between 0 and %d", field, max)
	}

	return n, nil
}

// validateTypes: скаляр -> список; lowercase/трим, пустые выбрасываются,
// дубликаты схлопываются с сохранением порядка; итог — 1–2 значения словаря.
func validateTypes(raw any) ([]string, error) {
	var values []string

	switch v := raw.(type) {
	case nil:
	case string:
		values = []string{v}
	case []string:
		values = v
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, validationf("type entries must be strings")
			}
			values = append(values, s)
		}
	default:
		return nil, validationf("type must be a string or a list of strings")
	}

	seen := make(map[string]struct{}, len(values))
	var types []string
	for _, v := range values {
		name := strings.ToLower(strings.TrimSpace(v))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		types = append(types, name)
	}

	if len(types) < 1 || len(types) > 2 {
		return nil, validationf("type must contain 1 or 2 values")
	}

	for _, name := range types {
		if !models.AllowedType(name) {
			return nil, validationf("unknown type: %q", name)
		}
	}

	return types, nil
}
