package utils

const (
	GLMajorVersion = 4
	GLMinorVersion = 1

	ColorBits = 8
	DepthBits = 16

	FloatSize = 4
)
