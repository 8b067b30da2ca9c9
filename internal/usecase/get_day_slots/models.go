package get_day_slots

import (
	"time"

	"github.com/m04kA/KDP-AvailabilityService/internal/availability"
	"github.com/m04kA/KDP-AvailabilityService/pkg/types"
)

// Request модель запроса на получение слотов конкретной даты
type Request struct {
	Date time.Time // Дата, для которой запрашиваются слоты (без времени)
}

// Slot модель временного слота
type Slot struct {
	Time              types.TimeString `json:"time"`    // Время начала слота, например "10:00"
	EndTime           types.TimeString `json:"endTime"` // Время окончания слота
	Available         bool             `json:"available"`
	RemainingCapacity int              `json:"remainingCapacity"` // Может быть отрицательным при овербукинге
	TotalCapacity     int              `json:"totalCapacity"`
}

// BlockSlots слоты одного блока расписания
type BlockSlots struct {
	BlockName string `json:"blockName"`
	Slots     []Slot `json:"slots"`
}

// Response модель ответа со слотами даты
type Response struct {
	Date          string       `json:"date"` // "2025-10-15"
	IsRestDay     bool         `json:"isRestDay"`
	CanBeReleased bool         `json:"canBeReleased,omitempty"`
	RestDayFee    float64      `json:"restDayFee,omitempty"`
	Blocks        []BlockSlots `json:"blocks"`
}

// fromEngineBlocks конвертирует результат расчёта в DTO
func fromEngineBlocks(groups []availability.BlockSlots) []BlockSlots {
	blocks := make([]BlockSlots, len(groups))
	for i, group := range groups {
		slots := make([]Slot, len(group.Slots))
		for j, s := range group.Slots {
			slots[j] = Slot{
				Time:              s.Time,
				EndTime:           s.EndTime,
				Available:         s.Available,
				RemainingCapacity: s.RemainingCapacity,
				TotalCapacity:     s.TotalCapacity,
			}
		}
		blocks[i] = BlockSlots{BlockName: group.BlockName, Slots: slots}
	}
	return blocks
}
