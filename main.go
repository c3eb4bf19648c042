package main

import "github.com/nobatclinic/nobat_backend/cmd"

func main() {
	cmd.Execute()
}
