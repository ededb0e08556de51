package component

type TintMode uint8

const (
	TintNormal TintMode = iota
	TintAlert
)

type Tint struct {
	Mode TintMode
}

var TintComponent = NewComponent[Tint]()
