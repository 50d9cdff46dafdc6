// @title           jobify API
// @version         1.0
// @description     REST API for tracking personal job applications.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:5100
// @BasePath        /api/v1

package main

import "jobify_backend/internal/app"

func main() {
	app.Run()
}
