package dispatcher

// DeliveryPath куда было записано событие
type DeliveryPath string

const (
	DeliveredRemote DeliveryPath = "remote"
	DeliveredLocal  DeliveryPath = "local"
)

// Result итог доставки одного события
type Result struct {
	Path DeliveryPath
	// File путь к журналу; для remote - тот, что вернул sink (может быть пустым)
	File string
	// RemoteErr причина перехода на локальную запись, nil если remote не пробовали или он ответил
	RemoteErr error
}
