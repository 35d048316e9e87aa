// Command admin-token выпускает JWT администратора для изменения фич-флагов.
// Секрет и срок жизни берутся из того же конфига, что и у сервиса (CONFIG_PATH, ADMIN_JWT_SECRET).
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/magabrotheeeer/payment-service/internal/config"
	"github.com/magabrotheeeer/payment-service/internal/lib/jwt"
)

func main() {
	username := flag.String("user", "admin", "имя администратора в токене")
	flag.Parse()

	cfg := config.MustLoad()
	if cfg.Admin.JWTSecret == "" {
		log.Fatal("admin.jwt_secret is not set")
	}

	token, err := jwt.NewJWTMaker(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL).GenerateToken(*username, jwt.RoleAdmin)
	if err != nil {
		log.Fatalf("cannot generate token: %s", err)
	}
	fmt.Println(token)
}
