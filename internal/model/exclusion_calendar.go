package model

// ExclusionRange именованный диапазон неучебных дней (границы включительно)
type ExclusionRange struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end"`   // YYYY-MM-DD
}

// ExclusionCalendar учебный календарь учителя на год.
// Пустые YearStart/YearEnd означают, что граница не задана.
type ExclusionCalendar struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Year      int              `json:"year"`
	YearStart string           `json:"year_start"`
	YearEnd   string           `json:"year_end"`
	Ranges    []ExclusionRange `json:"ranges"`
}
