package vision

// Frame представляет один кадр с камеры.
// Пиксели переведены в оттенки серого; число лиц подсчитано
// внешним детектором и передается вместе с кадром.
type Frame struct {
	Gray   []byte
	Width  int
	Height int
	Faces  int
}

// FrameSource выдает последний доступный кадр.
// Кадры не буферизуются: пропуск кадров допустим, устаревание — нет.
type FrameSource interface {
	Frame() (Frame, error)
}

// BlurScore возвращает оценку резкости кадра — дисперсию лапласиана.
// Чем ниже значение, тем сильнее размытие.
func BlurScore(f Frame) float64 {
	if f.Width < 3 || f.Height < 3 || len(f.Gray) < f.Width*f.Height {
		return 0
	}

	var sum, sumSq float64
	n := 0

	for y := 1; y < f.Height-1; y++ {
		for x := 1; x < f.Width-1; x++ {
			i := y*f.Width + x
			lap := 4*int(f.Gray[i]) -
				int(f.Gray[i-1]) - int(f.Gray[i+1]) -
				int(f.Gray[i-f.Width]) - int(f.Gray[i+f.Width])
			v := float64(lap)
			sum += v
			sumSq += v * v
			n++
		}
	}

	mean := sum / float64(n)
	return sumSq/float64(n) - mean*mean
}
