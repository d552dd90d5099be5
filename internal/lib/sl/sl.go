package sl

import "log/slog"

// Module tags log records with the subsystem that produced them.
func Module(name string) slog.Attr {
	return slog.String("module", name)
}

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "nil")
	}
	return slog.String("error", err.Error())
}

// Secret logs a credential-bearing value with all but the first characters masked.
func Secret(key, value string) slog.Attr {
	if len(value) > 4 {
		value = value[:4] + "****"
	} else if value != "" {
		value = "****"
	}
	return slog.String(key, value)
}
