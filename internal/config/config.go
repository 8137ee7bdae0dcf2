// loads up the .env files to be used internally by Uplift.

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// uses go package: godotenv to load up the enviroment variables of the given environment
func LoadConfig(env string) {
	err := godotenv.Load("config/" + strings.ToLower(env) + ".env")
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(-1)
	}
}
