package component

type Arrow struct{}

var ArrowComponent = NewComponent[Arrow]()
