package component

type Platform struct{}

var PlatformComponent = NewComponent[Platform]()
