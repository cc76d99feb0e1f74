package main

import "jira-worklog/cmd"

func main() {
	cmd.Execute()
}
