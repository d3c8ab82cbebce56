package entity

type Locale string

const (
	LocalePtBR Locale = "pt-BR"
	LocaleEnUS Locale = "en-US"
	LocaleZhCN Locale = "zh-CN"
	LocaleRuRU Locale = "ru-RU"

	DefaultLocale  = LocalePtBR
	FallbackLocale = LocaleEnUS
)

var SupportedLocales = []Locale{LocalePtBR, LocaleEnUS, LocaleZhCN, LocaleRuRU}

// ParseLocale maps an empty value to the default locale and anything unsupported
// to the fallback one.
func ParseLocale(s string) Locale {
	if s == "" {
		return DefaultLocale
	}
	for _, l := range SupportedLocales {
		if string(l) == s {
			return l
		}
	}
	return FallbackLocale
}

const (
	MsgCSVID          = "csv_id"
	MsgCSVDescription = "csv_description"
	MsgCSVAmount      = "csv_amount"
	MsgCSVDate        = "csv_date"
	MsgCSVType        = "csv_type"
	MsgCSVCategory    = "csv_category"
	MsgCSVIsRecurring = "csv_is_recurring"
	MsgCSVDueDate     = "csv_due_date"
	MsgOverdueByDays  = "overdue_by_days"
	MsgDueToday       = "due_today"
	MsgDueInDays      = "due_in_days"
	MsgPaid           = "paid"
)

var translations = map[Locale]map[string]string{
	LocalePtBR: {
		MsgCSVID:          "ID",
		MsgCSVDescription: "Descrição",
		MsgCSVAmount:      "Valor",
		MsgCSVDate:        "Data",
		MsgCSVType:        "Tipo",
		MsgCSVCategory:    "Categoria",
		MsgCSVIsRecurring: "Recorrente",
		MsgCSVDueDate:     "Vencimento",
		MsgOverdueByDays:  "Vencida há {days} dias",
		MsgDueToday:       "Vence hoje",
		MsgDueInDays:      "Vence em {days} dias",
		MsgPaid:           "Pago",
	},
	LocaleEnUS: {
		MsgCSVID:          "ID",
		MsgCSVDescription: "Description",
		MsgCSVAmount:      "Amount",
		MsgCSVDate:        "Date",
		MsgCSVType:        "Type",
		MsgCSVCategory:    "Category",
		MsgCSVIsRecurring: "Recurring",
		MsgCSVDueDate:     "Due Date",
		MsgOverdueByDays:  "Overdue by {days} days",
		MsgDueToday:       "Due today",
		MsgDueInDays:      "Due in {days} days",
		MsgPaid:           "Paid",
	},
	LocaleZhCN: {
		MsgCSVID:          "编号",
		MsgCSVDescription: "描述",
		MsgCSVAmount:      "金额",
		MsgCSVDate:        "日期",
		MsgCSVType:        "类型",
		MsgCSVCategory:    "类别",
		MsgCSVIsRecurring: "定期",
		MsgCSVDueDate:     "到期日",
		MsgOverdueByDays:  "已逾期 {days} 天",
		MsgDueToday:       "今天到期",
		MsgDueInDays:      "{days} 天后到期",
		MsgPaid:           "已支付",
	},
	LocaleRuRU: {
		MsgCSVID:          "ID",
		MsgCSVDescription: "Описание",
		MsgCSVAmount:      "Сумма",
		MsgCSVDate:        "Дата",
		MsgCSVType:        "Тип",
		MsgCSVCategory:    "Категория",
		MsgCSVIsRecurring: "Повторяющийся",
		MsgCSVDueDate:     "Срок оплаты",
		MsgOverdueByDays:  "Просрочено на {days} дн.",
		MsgDueToday:       "Оплатить сегодня",
		MsgDueInDays:      "Оплатить через {days} дн.",
		MsgPaid:           "Оплачено",
	},
}

// Translate looks key up in locale, then in the fallback locale, then returns key itself.
func Translate(locale Locale, key string) string {
	if msg, ok := translations[locale][key]; ok {
		return msg
	}
	if msg, ok := translations[FallbackLocale][key]; ok {
		return msg
	}
	return key
}
