package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/glwrapper/examples/gl_samples/utils"
	"github.com/glwrapper/examples/shader"
)

/*
Compile a vertex and a fragment shader from disk, link them and print the
driver's diagnostics. Exits with status 1 if either step fails.

	shader_check [--verbose] <vertex file> <fragment file>
*/

func check(driver shader.Driver, vertPath, fragPath string) error {
	vertSource, err := os.ReadFile(vertPath)
	if err != nil {
		return err
	}

	fragSource, err := os.ReadFile(fragPath)
	if err != nil {
		return err
	}

	vert, err := shader.CompileVertex(driver, string(vertSource))
	if err != nil {
		return errors.Wrap(err, vertPath)
	}

	frag, err := shader.CompileFragment(driver, string(fragSource))
	if err != nil {
		vert.Destroy()
		return errors.Wrap(err, fragPath)
	}

	program, err := shader.Link(driver, vert, frag)
	if err != nil {
		return err
	}
	defer program.Destroy()

	fmt.Printf("ok: program %d\n", program.Handle())
	return nil
}

func main() {
	runtime.LockOSThread()

	info := &utils.SampleInfo{Hidden: true}
	err := info.ProcessCommandLineArgs()
	if err != nil {
		log.Fatalln(err)
	}

	if len(info.Options.Args) != 2 {
		fmt.Println("usage: shader_check [--verbose] <vertex file> <fragment file>")
		os.Exit(2)
	}

	err = info.InitWindowSize(64, 64)
	if err != nil {
		log.Fatalln(err)
	}

	err = info.InitWindow()
	if err != nil {
		info.Destroy()
		log.Fatalf("%+v\n", err)
	}

	err = info.InitGLContext()
	if err != nil {
		info.Destroy()
		log.Fatalf("%+v\n", err)
	}

	err = check(info.Driver, info.Options.Args[0], info.Options.Args[1])
	info.Destroy()

	var compileErr *shader.CompileError
	var linkErr *shader.LinkError
	switch {
	case errors.As(err, &compileErr):
		fmt.Printf("%s stage:\n%s\n", compileErr.Stage, compileErr.Log)
		os.Exit(1)
	case errors.As(err, &linkErr):
		fmt.Printf("link:\n%s\n", linkErr.Log)
		os.Exit(1)
	case err != nil:
		log.Fatalln(err)
	}
}
