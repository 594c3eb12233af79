// Package shader compiles shader stages and links them into programs on top
// of a Driver, and owns the resulting driver objects.
//
// Every object a Unit or Program allocates is released exactly once: on the
// error path inside Compile and Link, or by Destroy. Link consumes its units,
// so a typical setup reads
//
//	vert, err := shader.CompileVertex(driver, vertexSource)
//	if err != nil {
//		return err
//	}
//	frag, err := shader.CompileFragment(driver, fragmentSource)
//	if err != nil {
//		vert.Destroy()
//		return err
//	}
//	program, err := shader.Link(driver, vert, frag)
//	if err != nil {
//		return err
//	}
//	defer program.Destroy()
//
// None of the types here are safe for concurrent use; all calls belong on the
// thread that owns the graphics context.
package shader
