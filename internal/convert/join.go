package convert

// CompileConcat joins the files named by a concat-demuxer list into a single
// output using stream copy. The list file is written by the caller; the
// -safe 0 flag permits absolute paths inside it.
func CompileConcat(listPath, outputPath string) *CommandSpec {
	return newCommandSpec([]string{
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		"-y", outputPath,
	})
}
