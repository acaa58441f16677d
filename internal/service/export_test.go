package service

// Реэкспорт внутренних констант для внешнего тестового пакета service_test.
const (
	CustomIDMin     = customIDMin
	CustomIDMax     = customIDMax
	IDProbeAttempts = idProbeAttempts
)
