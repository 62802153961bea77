// Command screener is the batch screening CLI. It walks a directory of
// resumes, scores each one, and writes HTML/text reports.
package main

func main() {
	Execute()
}
