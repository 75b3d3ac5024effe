// Package store описывает контракт документного хранилища: коллекции
// адресуются строковым путём, документы схемы не имеют. Реализации живут в
// internal/repository.
package store

import "time"

// Document один документ коллекции в сыром виде. Data это то что лежит в
// хранилище, валидация схемы происходит выше, на границе docmodel.
type Document struct {
	ID        string
	Data      map[string]interface{}
	UpdatedAt time.Time
}

// Snapshot полное содержимое коллекции на момент уведомления.
type Snapshot []Document

// Subscription стоячая подписка на коллекцию. Канал снапшотов закрывается
// при отмене контекста или терминальной ошибке; после закрытия канала Err
// возвращает причину (nil при штатной отписке). Ретраев нет.
type Subscription interface {
	Snapshots() <-chan Snapshot
	Err() error
}
