package vision

// Kind представляет вид нарушения, обнаруженного на кадре
type Kind int

const (
	KindNone Kind = iota
	KindMultiFace
	KindNoFace
	KindBlurry
)

// String возвращает человекочитаемое имя вида нарушения
func (k Kind) String() string {
	switch k {
	case KindMultiFace:
		return "multi-face"
	case KindNoFace:
		return "no-face"
	case KindBlurry:
		return "blurry"
	}
	return "none"
}

// Classifier классифицирует кадры по видам нарушений
type Classifier struct {
	BlurThreshold float64
}

// Classify возвращает ровно один вид нарушения для кадра.
// Приоритет: несколько лиц > нет лица > размытие.
func (c *Classifier) Classify(f Frame) Kind {
	switch {
	case f.Faces > 1:
		return KindMultiFace
	case f.Faces == 0:
		return KindNoFace
	case BlurScore(f) < c.BlurThreshold:
		return KindBlurry
	}
	return KindNone
}
