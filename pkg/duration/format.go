package duration

// Format renders a duration in seconds using the given language code; an
// empty code selects the registry default. At most two units are shown,
// and units below the second-largest are dropped rather than rounded:
// 3 hours 59 minutes 59 seconds renders without the seconds.
func (r *Registry) Format(seconds float64, code string) (string, error) {
	l, err := r.resolve(code)
	if err != nil {
		return "", err
	}

	if seconds < 1 {
		return l.Time.LessThanSecond, nil
	}

	total := int64(seconds)
	minutes := total / 60
	remSeconds := total % 60
	if minutes < 1 {
		return renderUnit(remSeconds, UnitSecond, l)
	}

	hours := minutes / 60
	remMinutes := minutes % 60
	if hours < 1 {
		return renderPair(remMinutes, UnitMinute, remSeconds, UnitSecond, l)
	}

	days := hours / 24
	remHours := hours % 24
	if days < 1 {
		return renderPair(remHours, UnitHour, remMinutes, UnitMinute, l)
	}
	return renderPair(days, UnitDay, remHours, UnitHour, l)
}

// renderPair renders the major unit and appends the minor one when it is
// non-zero.
func renderPair(major int64, majorUnit string, minor int64, minorUnit string, l Lang) (string, error) {
	out, err := renderUnit(major, majorUnit, l)
	if err != nil {
		return "", err
	}
	if minor > 0 {
		rest, err := renderUnit(minor, minorUnit, l)
		if err != nil {
			return "", err
		}
		out += l.Time.Separator + rest
	}
	return out, nil
}

// Format renders a duration against the package default registry.
func Format(seconds float64, code string) (string, error) {
	return Default().Format(seconds, code)
}
