package main

import (
	"log"
	"os"
	"os/exec"

	"github.com/spf13/viper"

	"github.com/zzl/go-enums/codegen"
	"github.com/zzl/go-enums/decl"
	"github.com/zzl/go-enums/gomodel"
	"github.com/zzl/go-enums/goscan"
)

// enumgen reads an enumgen.yaml config from the working directory:
//
//	source: go            # go: scan marked types, yaml: read manifests
//	packages: ["./..."]
//	manifest_dir: manifests
//	output: output
//	prefix_values: false
func main() {
	v := viper.New()
	v.SetConfigName("enumgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetDefault("source", "go")
	v.SetDefault("packages", []string{"./..."})
	v.SetDefault("manifest_dir", "manifests")
	v.SetDefault("output", "output")
	v.SetDefault("prefix_values", false)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Panic(err)
		}
	}

	var model *gomodel.Model
	var err error
	var companion bool
	switch source := v.GetString("source"); source {
	case "go":
		companion = true
		model, err = goscan.NewScanner("").Scan(v.GetStringSlice("packages")...)
	case "yaml":
		model, err = decl.LoadDir(v.GetString("manifest_dir"))
	default:
		log.Panicf("unknown source %q", source)
	}
	if err != nil {
		log.Panic(err)
	}
	if model.EnumCount() == 0 {
		log.Println("no enums found")
		return
	}

	generator := codegen.NewGenerator(model)
	generator.Companion = companion
	generator.OutputDir = v.GetString("output")
	generator.PrefixValuesWithTypeName = v.GetBool("prefix_values")
	if !companion {
		os.MkdirAll(generator.OutputDir, os.ModePerm)
	}
	generator.Gen()

	for _, dir := range outputDirs(model, generator) {
		_ = exec.Command("gofmt", "-s", "-w", dir).Run()
	}
	log.Printf("generated %d enums", model.EnumCount())
}

func outputDirs(model *gomodel.Model, generator *codegen.Generator) []string {
	if !generator.Companion {
		return []string{generator.OutputDir}
	}
	var dirs []string
	for _, pkg := range model.Packages {
		if pkg.Dir != "" {
			dirs = append(dirs, pkg.Dir)
		}
	}
	return dirs
}
