package confirmlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Writer дописывает подтверждённые бронирования в текстовый журнал, по строке на событие.
// Внутри процесса запись сериализуется мьютексом, между процессами - flock(2).
type Writer struct {
	path string
	mu   sync.Mutex
	open func(path string) (appendFile, error)
}

// appendFile часть *os.File, нужная для дозаписи под flock
type appendFile interface {
	Fd() uintptr
	WriteString(s string) (int, error)
	Close() error
}

// NewWriter создает writer для файла path. Файл и каталог создаются при первой записи.
func NewWriter(path string) *Writer {
	return &Writer{path: path, open: openAppend}
}

func openAppend(path string) (appendFile, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Path путь к журналу
func (w *Writer) Path() string {
	return w.path
}

// Append дописывает строку события и возвращает путь к журналу
func (w *Writer) Append(event domain.ConfirmedReservationEvent) (_ string, err error) {
	if multiline := event.MultilineFields(); len(multiline) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMultiline, strings.Join(multiline, ", "))
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return "", fmt.Errorf("%w: create directory: %v", ErrWrite, err)
	}

	f, err := w.open(w.path)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrWrite, w.path, err)
	}
	defer func() {
		// ошибка close на успешной записи значит, что строка могла не дойти до файла
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %v", ErrWrite, w.path, closeErr)
		}
	}()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		return "", fmt.Errorf("%w: lock %s: %v", ErrWrite, w.path, err)
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN) //nolint:errcheck

	// одна строка - один write(2) в O_APPEND дескриптор
	if _, err := f.WriteString(event.Line()); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", ErrWrite, w.path, err)
	}

	return w.path, nil
}
