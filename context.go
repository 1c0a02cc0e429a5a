package nls

import "context"

type contextKey string

func (c contextKey) String() string {
	return "nls/" + string(c)
}

const ctxKeyLocalization = contextKey("localizationKey")

// ToContext adds a Localization to the current supplied context.
func ToContext(ctx context.Context, l *Localization) context.Context {
	return context.WithValue(ctx, ctxKeyLocalization, l)
}

// FromContext extracts a Localization from the supplied context if any exist.
func FromContext(ctx context.Context) *Localization {
	l, ok := ctx.Value(ctxKeyLocalization).(*Localization)
	if !ok {
		return nil
	}

	return l
}
