package calendar

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Locale holds the labels used for headers and month cells.
type Locale struct {
	Tag         language.Tag
	Months      [12]string
	MonthsShort [12]string
	Weekdays    [7]string // two letter headers, Sunday first
}

// MonthName returns the long name of m.
func (l Locale) MonthName(m time.Month) string {
	return l.Months[m-1]
}

// ShortMonthName returns the abbreviated name of m.
func (l Locale) ShortMonthName(m time.Month) string {
	return l.MonthsShort[m-1]
}

// MonthYear formats the Days view header, e.g. "January 2024".
func (l Locale) MonthYear(d Date) string {
	return fmt.Sprintf("%s %d", l.MonthName(d.Month), d.Year)
}

var locales = []Locale{
	{
		Tag:         language.English,
		Months:      [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		MonthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Weekdays:    [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	},
	{
		Tag:         language.German,
		Months:      [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		MonthsShort: [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		Weekdays:    [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	},
	{
		Tag:         language.French,
		Months:      [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		MonthsShort: [12]string{"janv", "févr", "mars", "avr", "mai", "juin", "juil", "août", "sept", "oct", "nov", "déc"},
		Weekdays:    [7]string{"di", "lu", "ma", "me", "je", "ve", "sa"},
	},
	{
		Tag:         language.Spanish,
		Months:      [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		MonthsShort: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
		Weekdays:    [7]string{"do", "lu", "ma", "mi", "ju", "vi", "sá"},
	},
	{
		Tag:         language.Russian,
		Months:      [12]string{"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь", "Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь"},
		MonthsShort: [12]string{"Янв", "Фев", "Мар", "Апр", "Май", "Июн", "Июл", "Авг", "Сен", "Окт", "Ноя", "Дек"},
		Weekdays:    [7]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"},
	},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.Tag
	}
	return language.NewMatcher(tags)
}()

// Names returns the labels for the BCP 47 locale string, e.g. "de" or
// "fr-CA". Unknown or malformed locales fall back to English.
func Names(locale string) Locale {
	if locale == "" {
		return locales[0]
	}
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return locales[0]
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return locales[0]
	}
	return locales[idx]
}

// English returns the default locale.
func English() Locale {
	return locales[0]
}
