// Package sl содержит вспомогательные функции для работы с логгером slog.
// Пакет единообразно формирует структурированные поля лога:
// ошибки, операции и денежные суммы.
package sl

import (
	"log/slog"

	"github.com/magabrotheeeer/payment-service/internal/models"
)

// Err возвращает slog.Attr с ключом "error" и значением текста ошибки.
// Для nil возвращается пустая строка, чтобы логирование не паниковало.
//
// Пример:
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Op возвращает атрибут с именем операции.
func Op(op string) slog.Attr {
	return slog.String("op", op)
}

// Amount возвращает группу с денежной суммой.
func Amount(m models.Money) slog.Attr {
	return slog.Group("amount",
		slog.Int64("units", m.Units),
		slog.Int64("nanos", int64(m.Nanos)),
		slog.String("currency_code", m.CurrencyCode),
	)
}
