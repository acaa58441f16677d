package models

// SortField — колонка сортировки выдачи.
type SortField string

const (
	SortByID      SortField = "pokemon_id"
	SortByName    SortField = "name"
	SortByHP      SortField = "hp"
	SortByAttack  SortField = "attack"
	SortByDefense SortField = "defense"
	SortBySpeed   SortField = "speed"
)

// Sort — пара (колонка, направление).
type Sort struct {
	Field SortField
	Desc  bool
}

// DefaultSort — сортировка по умолчанию: id по возрастанию.
var DefaultSort = Sort{Field: SortByID}

var sortOptions = map[string]Sort{
	"id-asc":       {Field: SortByID},
	"id-desc":      {Field: SortByID, Desc: true},
	"name-asc":     {Field: SortByName},
	"name-desc":    {Field: SortByName, Desc: true},
	"hp-desc":      {Field: SortByHP, Desc: true},
	"attack-desc":  {Field: SortByAttack, Desc: true},
	"defense-desc": {Field: SortByDefense, Desc: true},
	"speed-desc":   {Field: SortBySpeed, Desc: true},
}

// ParseSort выбирает сортировку из фиксированного набора.
// Неизвестное значение молча откатывается к DefaultSort.
func ParseSort(value string) Sort {
	if s, ok := sortOptions[value]; ok {
		return s
	}

	return DefaultSort
}
