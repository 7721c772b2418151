package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/glabrego/noor-cli/internal/tui/theme"
)

type Tab int

const (
	TabHome Tab = iota
	TabHadith
	TabReader
)

const AppTitle = "نور الهدى"

func (t Tab) Label() string {
	switch t {
	case TabHadith:
		return "الأحاديث الشريفة"
	case TabReader:
		return "القراءة"
	default:
		return "القرآن الكريم"
	}
}

// NavBar renders the title and the tabs. The reader tab only appears once
// a chapter has been opened.
func NavBar(active Tab, readerAvailable bool, th tuitheme.Theme) string {
	tabs := []Tab{TabHome, TabHadith}
	if readerAvailable {
		tabs = append(tabs, TabReader)
	}
	parts := make([]string, 0, len(tabs)+1)
	parts = append(parts, th.Title.Render("★ "+AppTitle))
	for _, tab := range tabs {
		if tab == active {
			parts = append(parts, th.NavActive.Render(tab.Label()))
			continue
		}
		parts = append(parts, th.NavIdle.Render(tab.Label()))
	}
	return strings.Join(parts, " ")
}

func Toolbar(active Tab, searching, settingsOpen, modalOpen bool) string {
	switch active {
	case TabHadith:
		return "enter: بحث بالموضوع | ctrl+r: حديث عشوائي | ↑/↓: تمرير | tab: تبديل | esc: الرئيسية | ctrl+c: خروج"
	case TabReader:
		if modalOpen {
			return "b: حفظ علامة | e: تفسير | y: نسخ | o: فتح في المتصفح | a: عودة للإجراءات | esc: إغلاق"
		}
		if settingsOpen {
			return "+/-: حجم الخط | >/<: تباعد الأسطر | B: خط عريض | D: الوضع الداكن | s: إغلاق الإعدادات"
		}
		return "j/k: الآية | enter: الإجراءات | n/p: الصفحة | g/G: الصفحة الأولى/الأخيرة | s: الإعدادات | r: إعادة التحميل | esc: رجوع | q: خروج"
	default:
		if searching {
			return "اكتب للتصفية | enter: تم | esc: مسح البحث"
		}
		return "j/k: تنقل | enter: فتح | /: بحث | c: متابعة القراءة | tab: الحديث | r: إعادة التحميل | q: خروج"
	}
}

func StatusLine(loading, hasWarning bool, status string, th tuitheme.Theme) string {
	state := "idle"
	stateLabel := th.StateIdle.Render("state")
	switch {
	case hasWarning:
		state = "warning"
		stateLabel = th.StateWarn.Render("state")
	case loading:
		state = "loading"
		stateLabel = th.StateLoad.Render("state")
	}
	main := "جاهز"
	if status != "" {
		main = status
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}
