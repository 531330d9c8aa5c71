package generator

import (
	"io"

	"github.com/dave/jennifer/jen"
)

const (
	godogPackage     = "github.com/cucumber/godog"
	cacikPackage     = "github.com/denizgursoy/cacik-rp/pkg/cacik"
	reporterPackage  = "github.com/denizgursoy/cacik-rp/pkg/reporter"
	formatterPackage = "github.com/denizgursoy/cacik-rp/pkg/formatter"

	// TestFunctionName is the test the generated file declares.
	TestFunctionName = "TestReportPortal"
)

type (
	FunctionLocator struct {
		FullPackageName string
		FunctionName    string
	}

	Output struct {
		ScenarioInitializers []*FunctionLocator // func(*godog.ScenarioContext)
		SuiteInitializers    []*FunctionLocator // func(*godog.TestSuiteContext)
		FeaturePaths         []string
		Tags                 string
		CurrentPackagePath   string // Full import path of the package where the test file is generated
		PackageName          string // Short package name (e.g., "myapp"); if empty, defaults to "main"
	}
)

// isSamePackage returns true when the function is in the same package as the
// generated test file and therefore should be called without an import qualifier.
func (o *Output) isSamePackage(fullPkg string) bool {
	return fullPkg == "" || (o.CurrentPackagePath != "" && fullPkg == o.CurrentPackagePath)
}

// qualOrLocal returns a jen.Statement that either qualifies the function call with
// its package path (for external packages) or calls it directly (for same-package).
func (o *Output) qualOrLocal(fn *FunctionLocator) *jen.Statement {
	if o.isSamePackage(fn.FullPackageName) {
		return jen.Id(fn.FunctionName)
	}
	return jen.Qual(fn.FullPackageName, fn.FunctionName)
}

// initializer refers to the single function directly and wraps several in
// a literal calling each in order.
func (o *Output) initializer(functions []*FunctionLocator, contextType string) jen.Code {
	if len(functions) == 1 {
		return o.qualOrLocal(functions[0])
	}

	calls := make([]jen.Code, 0, len(functions))
	for _, fn := range functions {
		calls = append(calls, o.qualOrLocal(fn).Call(jen.Id("ctx")))
	}
	return jen.Func().Params(jen.Id("ctx").Op("*").Qual(godogPackage, contextType)).Block(calls...)
}

func (o *Output) Generate(writer io.Writer) error {
	pkgName := o.PackageName
	if pkgName == "" {
		pkgName = "main"
	}
	file := jen.NewFile(pkgName)
	file.HeaderComment("Code generated by cacik-rp. DO NOT EDIT.")

	fatalOnErr := jen.If(jen.Id("err").Op("!=").Nil()).Block(
		jen.Id("t").Dot("Fatal").Call(jen.Id("err")),
	)

	paths := make([]jen.Code, 0, len(o.FeaturePaths))
	for _, path := range o.FeaturePaths {
		paths = append(paths, jen.Lit(path))
	}

	options := jen.Dict{
		jen.Id("Format"):      jen.Qual(formatterPackage, "FormatName"),
		jen.Id("Paths"):       jen.Index().String().Values(paths...),
		jen.Id("Concurrency"): jen.Lit(1),
		jen.Id("TestingT"):    jen.Id("t"),
	}
	if o.Tags != "" {
		options[jen.Id("Tags")] = jen.Lit(o.Tags)
	}

	suite := jen.Dict{
		jen.Id("Name"):                jen.Lit(pkgName),
		jen.Id("ScenarioInitializer"): o.initializer(o.ScenarioInitializers, "ScenarioContext"),
		jen.Id("Options"):             jen.Op("&").Qual(godogPackage, "Options").Values(options),
	}
	if len(o.SuiteInitializers) > 0 {
		suite[jen.Id("TestSuiteInitializer")] = o.initializer(o.SuiteInitializers, "TestSuiteContext")
	}

	file.Func().Id(TestFunctionName).Params(
		jen.Id("t").Op("*").Qual("testing", "T"),
	).Block(
		jen.List(jen.Id("config"), jen.Id("err")).Op(":=").Qual(cacikPackage, "ResolveConfig").Call(jen.Lit("")),
		fatalOnErr,
		jen.Line(),
		jen.List(jen.Id("listener"), jen.Id("err")).Op(":=").Qual(reporterPackage, "NewFromConfig").Call(
			jen.Id("config"), jen.Qual("os", "Stdout"),
		),
		fatalOnErr,
		jen.Qual(formatterPackage, "Register").Call(jen.Id("listener")),
		jen.Line(),
		jen.Id("status").Op(":=").Qual(godogPackage, "TestSuite").Values(suite).Dot("Run").Call(),
		jen.If(jen.Id("status").Op("!=").Lit(0)).Block(
			jen.Id("t").Dot("Fatalf").Call(jen.Lit("godog suite failed with status %d"), jen.Id("status")),
		),
	)

	_, err := writer.Write([]byte(file.GoString()))

	return err
}
