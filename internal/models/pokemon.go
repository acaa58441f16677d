// models содержит доменные сущности pokedex-service.
package models

// OriginalMaxID — верхняя граница идентификаторов «оригинальных» покемонов,
// засеянных из внешнего каталога. Всё, что выше, считается пользовательским.
const OriginalMaxID = 151

// Pokemon — единственная персистентная сущность сервиса.
//
// Инварианты:
//   - PokemonID уникален; значения <= OriginalMaxID не подлежат удалению;
//   - Name — lowercase, уникально без учёта регистра;
//   - Types содержит 1–2 значения из закрытого словаря TypeNames;
//   - числовые статы лежат в своих границах (см. валидатор).
type Pokemon struct {
	PokemonID int64    `json:"pokemonId"`
	Name      string   `json:"name"`
	Image     *string  `json:"image"`
	HP        int      `json:"hp"`
	Attack    int      `json:"attack"`
	Defense   int      `json:"defense"`
	Speed     int      `json:"speed"`
	Height    int      `json:"height"`
	Weight    int      `json:"weight"`
	Types     []string `json:"type"`
	IsCustom  *bool    `json:"is_custom,omitempty"`
	CreatedBy *string  `json:"created_by,omitempty"`
}

// Custom сообщает, является ли запись пользовательской.
// При отсутствии явного флага признак выводится из диапазона идентификатора.
func (p Pokemon) Custom() bool {
	if p.IsCustom != nil {
		return *p.IsCustom
	}

	return p.PokemonID > OriginalMaxID
}

// TypeNames — закрытый словарь типов покемонов.
var TypeNames = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

var typeSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(TypeNames))
	for _, name := range TypeNames {
		m[name] = struct{}{}
	}
	return m
}()

// AllowedType сообщает, входит ли имя в словарь типов.
func AllowedType(name string) bool {
	_, ok := typeSet[name]
	return ok
}
