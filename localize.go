package nls

// localizeDirect formats the caller supplied fallback message, ignoring the
// key entirely. It backs the no-bundle case and every degraded load.
func (l *Localization) localizeDirect() LocalizeFunc {
	return func(_ any, message string, args ...any) string {
		return l.format(message, args)
	}
}

// localizeIndexed looks messages up by position. An index outside the bundle
// produces no result rather than the fallback message.
func (l *Localization) localizeIndexed(messages []string) LocalizeFunc {
	return func(key any, message string, args ...any) string {
		index, ok := messageIndex(key)
		if !ok {
			l.log.WithError(ErrBrokenLocalizeCall).WithField("key", key).
				Error("localize called with a non numeric key on an indexed bundle")
			return ""
		}

		if index < 0 || index >= len(messages) {
			l.log.WithError(ErrBrokenLocalizeCall).WithField("index", index).WithField("messages", len(messages)).
				Error("localize called with an index outside the bundle")
			return ""
		}

		return l.format(messages[index], args)
	}
}

// localizeKeyed looks messages up by string key or Key record. A key with no
// translation degrades to the fallback message after reporting it.
func (l *Localization) localizeKeyed(byKey map[string]string) LocalizeFunc {
	return func(key any, message string, args ...any) string {
		name, ok := keyName(key)
		if !ok {
			l.log.WithError(ErrBrokenLocalizeCall).WithField("key", key).
				Error("localize called with a non string key on a keyed bundle")
			return ""
		}

		if translated, found := byKey[name]; found {
			return l.format(translated, args)
		}

		l.log.WithError(ErrKeyNotExternalized).WithField("key", name).
			Warn("localizing with the provided fallback message")
		return l.format(message, args)
	}
}

func messageIndex(key any) (int, bool) {
	switch v := key.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	default:
		return 0, false
	}
}

func keyName(key any) (string, bool) {
	switch v := key.(type) {
	case string:
		return v, true
	case Key:
		return v.Name, true
	case *Key:
		if v == nil {
			return "", false
		}
		return v.Name, true
	default:
		return "", false
	}
}
