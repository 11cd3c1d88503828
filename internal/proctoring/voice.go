package proctoring

import (
	"encoding/binary"
	"math"
)

// Features представляет акустические характеристики одного ответа
type Features struct {
	RMS           float64
	ZeroCrossings int
}

// ExtractFeatures вычисляет характеристики по 16-битному PCM (little-endian)
func ExtractFeatures(pcm []byte) Features {
	n := len(pcm) / 2
	if n == 0 {
		return Features{}
	}

	var sumSq float64
	crossings := 0
	prevNeg := false

	for i := 0; i < n; i++ {
		s := int16(binary.LittleEndian.Uint16(pcm[2*i:]))
		v := float64(s)
		sumSq += v * v

		neg := s < 0
		if i > 0 && neg != prevNeg {
			crossings++
		}
		prevNeg = neg
	}

	return Features{
		RMS:           math.Sqrt(sumSq / float64(n)),
		ZeroCrossings: crossings,
	}
}

// Comparator сравнивает голос текущего ответа с предыдущим.
// Пустая строка означает отсутствие сигнала.
type Comparator interface {
	Check(audio []byte) string
}

// EnergyComparator — грубая эвристика по относительному изменению
// энергии сигнала между соседними ответами. Это не биометрическая
// проверка: сигнал имеет низкую достоверность.
type EnergyComparator struct {
	ratio    float64
	previous *Features
}

// NewEnergyComparator создает компаратор с относительным порогом изменения
func NewEnergyComparator(ratio float64) *EnergyComparator {
	return &EnergyComparator{ratio: ratio}
}

// Check возвращает сигнал о возможной смене говорящего.
// Базой сравнения всегда становится последний ответ с аудио;
// ответ без аудио не дает сигнала и не меняет базу.
func (c *EnergyComparator) Check(audio []byte) string {
	if len(audio) == 0 {
		return ""
	}

	f := ExtractFeatures(audio)

	if c.previous == nil {
		c.previous = &f
		return ""
	}

	prevRMS := c.previous.RMS
	c.previous = &f

	if math.Abs(f.RMS-prevRMS)/(prevRMS+1) > c.ratio {
		return "Possible different speaker detected"
	}

	return ""
}
