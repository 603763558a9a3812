package models

import "errors"

// ErrNotFound возвращается репозиториями, когда запись с указанным id
// отсутствует. Хэндлеры различают по нему 404 и 500.
var ErrNotFound = errors.New("record not found")
