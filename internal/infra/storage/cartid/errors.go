package cartid

import "errors"

var (
	// ErrStorage возвращается при ошибке хранилища идентификаторов корзин
	ErrStorage = errors.New("cartid.storage: storage error")
)
