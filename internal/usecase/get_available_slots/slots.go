package get_available_slots

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agendahub/TenantBookingService/internal/domain"
	"github.com/agendahub/TenantBookingService/pkg/types"
)

// generateSlotLabels генерирует сетку слотов рабочего дня
//
// Чистая функция без побочных эффектов: одинаковый вход всегда дает
// одинаковый выход. Для каждого часа от startHour до endHour (не включая)
// создаются метки ":00" и ":30"; метки, попадающие в окно перерыва
// [breakStart, breakEnd), пропускаются.
//
// У границ рабочего дня учитывается только час: "09:30" дает слоты
// с "09:00". Это сознательное сохранение поведения развернутых клиентов,
// а не недосмотр. Некорректные границы откатываются к часам по умолчанию
// (09:00-18:00), функция никогда не возвращает ошибку
func generateSlotLabels(workStart, workEnd, breakStart, breakEnd string) []types.TimeString {
	startHour := parseHour(workStart, domain.DefaultWorkStart)
	endHour := parseHour(workEnd, domain.DefaultWorkEnd)

	hasBreak := breakStart != "" && breakEnd != ""

	slots := make([]types.TimeString, 0, (endHour-startHour)*2)

	for hour := startHour; hour < endHour; hour++ {
		for _, minute := range []string{"00", "30"} {
			label := fmt.Sprintf("%02d:%s", hour, minute)

			// Лексикографическое сравнение корректно для "HH:MM"
			// с ведущими нулями
			if hasBreak && label >= breakStart && label < breakEnd {
				continue
			}

			slots = append(slots, types.TimeString(label))
		}
	}

	return slots
}

// parseHour извлекает часовую компоненту из метки "HH:MM"
// При некорректном входе используется fallback
func parseHour(label, fallback string) int {
	hour, err := hourOf(label)
	if err != nil {
		hour, _ = hourOf(fallback)
	}
	return hour
}

func hourOf(label string) (int, error) {
	head, _, ok := strings.Cut(label, ":")
	if !ok {
		return 0, fmt.Errorf("no colon in %q", label)
	}

	hour, err := strconv.Atoi(head)
	if err != nil {
		return 0, err
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d out of range", hour)
	}

	return hour, nil
}

// subtractTaken вычитает занятые метки из сетки слотов,
// сохраняя исходный порядок
func subtractTaken(all []types.TimeString, taken []*domain.Booking) []types.TimeString {
	occupied := make(map[types.TimeString]struct{}, len(taken))
	for _, b := range taken {
		if b.IsActive() {
			occupied[b.BookingTime] = struct{}{}
		}
	}

	free := make([]types.TimeString, 0, len(all))
	for _, slot := range all {
		if _, busy := occupied[slot]; !busy {
			free = append(free, slot)
		}
	}

	return free
}
