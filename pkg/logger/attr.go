package logger

import "log/slog"

// Error records err under "error". A nil err yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records id under "request_id". An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Kind records the validation kind under "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Valid records a check result under "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
