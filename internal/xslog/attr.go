package xslog

import (
	"log/slog"
	"time"

	"github.com/garrettladley/ecoscan/internal/version"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func ScanID(id string) slog.Attr {
	const scanIDKey = "scan_id"
	return slog.String(scanIDKey, id)
}

func ToastID(id string) slog.Attr {
	const toastIDKey = "toast_id"
	return slog.String(toastIDKey, id)
}

func Variant(v string) slog.Attr {
	const variantKey = "variant"
	return slog.String(variantKey, v)
}

func Title(title string) slog.Attr {
	const titleKey = "title"
	return slog.String(titleKey, title)
}

func Percent(p float64) slog.Attr {
	const percentKey = "percent"
	return slog.Float64(percentKey, p)
}

func Phase(label string) slog.Attr {
	const phaseKey = "phase"
	return slog.String(phaseKey, label)
}

func Page(name string) slog.Attr {
	const pageKey = "page"
	return slog.String(pageKey, name)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}

func Interval(d time.Duration) slog.Attr {
	const intervalKey = "interval"
	return slog.Duration(intervalKey, d)
}

func Total(d time.Duration) slog.Attr {
	const totalKey = "total"
	return slog.Duration(totalKey, d)
}

func Elapsed(d time.Duration) slog.Attr {
	const elapsedKey = "elapsed"
	return slog.Duration(elapsedKey, d)
}

func TTL(d time.Duration) slog.Attr {
	const ttlKey = "ttl"
	return slog.Duration(ttlKey, d)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Migration(name string) slog.Attr {
	const migrationKey = "migration"
	return slog.String(migrationKey, name)
}
