package main

import (
	"flag"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/zzl/go-enums/codegen"
	"github.com/zzl/go-enums/mdimport"
	"github.com/zzl/go-enums/utils"
)

func main() {
	mdFilePath := flag.String("winmd", "assets/Windows.winmd", "path of the winmd file")
	outputDir := flag.String("out", "output", "output directory")
	namespaces := flag.String("ns", "", "comma separated namespace patterns, ! excludes")
	prefixValues := flag.Bool("prefix-values", true, "prefix value constants with the type name")
	flag.Parse()

	os.MkdirAll(*outputDir, os.ModePerm)
	utils.CleanDir(*outputDir)

	var filter *mdimport.Filter
	if *namespaces != "" {
		filter = &mdimport.Filter{Namespaces: strings.Split(*namespaces, ",")}
	}

	importer := mdimport.NewImporter(filter)
	model, err := importer.Import(*mdFilePath)
	if err != nil {
		log.Panic(err)
	}
	log.Printf("imported %d enums", model.EnumCount())

	generator := codegen.NewGenerator(model)
	generator.OutputDir = *outputDir
	generator.NsFullNameAsFileName = true
	generator.FileNamePrefixToStrip = "Windows."
	generator.PrefixValuesWithTypeName = *prefixValues
	generator.Gen()

	absOutput, _ := filepath.Abs(*outputDir)
	_ = exec.Command("gofmt", "-s", "-w", absOutput).Run()
	println("Done.")
}
