package duration

import "math"

// Built-in language tables. They double as examples of the table shape;
// a full CLDR plural database is out of scope.

func English() Lang {
	return Lang{
		Code: "en",
		Time: Time{
			Format:         "{value} {unit}",
			Separator:      ", ",
			LessThanSecond: "less than a second",
			Units: map[string]string{
				"second": "second", "seconds": "seconds",
				"minute": "minute", "minutes": "minutes",
				"hour": "hour", "hours": "hours",
				"day": "day", "days": "days",
			},
		},
	}
}

// RussianPlural distinguishes the one/few/many forms, keyed as
// "<unit>.one", "<unit>.few" and "<unit>.many" in the units map.
func RussianPlural(count float64, baseUnit string) string {
	n := int64(math.Abs(count))
	mod10, mod100 := n%10, n%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return baseUnit + ".one"
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return baseUnit + ".few"
	default:
		return baseUnit + ".many"
	}
}

func Russian() Lang {
	return Lang{
		Code: "ru",
		Time: Time{
			Format:         "{value} {unit}",
			Separator:      " и ",
			LessThanSecond: "меньше секунды",
			Units: map[string]string{
				"second.one": "секунда", "second.few": "секунды", "second.many": "секунд",
				"minute.one": "минута", "minute.few": "минуты", "minute.many": "минут",
				"hour.one": "час", "hour.few": "часа", "hour.many": "часов",
				"day.one": "день", "day.few": "дня", "day.many": "дней",
			},
		},
		Plural: RussianPlural,
	}
}

func French() Lang {
	return Lang{
		Code: "fr",
		Time: Time{
			Format:         "{value} {unit}",
			Separator:      " et ",
			LessThanSecond: "moins d'une seconde",
			Units: map[string]string{
				"second": "seconde", "seconds": "secondes",
				"minute": "minute", "minutes": "minutes",
				"hour": "heure", "hours": "heures",
				"day": "jour", "days": "jours",
			},
		},
	}
}

func German() Lang {
	return Lang{
		Code: "de",
		Time: Time{
			Format:         "{value} {unit}",
			Separator:      " und ",
			LessThanSecond: "weniger als eine Sekunde",
			Units: map[string]string{
				"second": "Sekunde", "seconds": "Sekunden",
				"minute": "Minute", "minutes": "Minuten",
				"hour": "Stunde", "hours": "Stunden",
				"day": "Tag", "days": "Tage",
			},
		},
	}
}

func Spanish() Lang {
	return Lang{
		Code: "es",
		Time: Time{
			Format:         "{value} {unit}",
			Separator:      " y ",
			LessThanSecond: "menos de un segundo",
			Units: map[string]string{
				"second": "segundo", "seconds": "segundos",
				"minute": "minuto", "minutes": "minutos",
				"hour": "hora", "hours": "horas",
				"day": "día", "days": "días",
			},
		},
	}
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterPluralRule("ru", RussianPlural)
	for _, l := range []Lang{English(), Russian(), French(), German(), Spanish()} {
		// Built-in tables always carry valid codes.
		_ = r.Add(l)
	}
	return r
}

// Default returns the package registry preloaded with the built-in
// languages; English is its default language.
func Default() *Registry { return defaultRegistry }
