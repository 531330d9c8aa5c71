package empty

type ScenarioContext struct{}

func Initialize(ctx *ScenarioContext) {}
