package htmlemail

import (
	"bytes"
	"html/template"
)

// Welcome génère le corps du mail de bienvenue envoyé à l'inscription.
func Welcome(name string) (string, error) {
	tmpl, err := template.New("email").Parse(`
		<!DOCTYPE html>
		<html>
			<body style="font-family: sans-serif; background-color: #00C896; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background: white; padding: 20px; border-radius: 8px;">
					<h2 style="color: #10b981;">👋 Bienvenue sur Tasky, {{.Name}} !</h2>
					<p>Ton compte est prêt. Dis-nous comment se passe ta prise en main de l'application.</p>
				</div>
			</body>
		</html>
	`)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct{ Name string }{Name: name})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Farewell génère le corps du mail d'adieu envoyé à la suppression du
// compte.
func Farewell(name string) (string, error) {
	tmpl, err := template.New("email").Parse(`
		<!DOCTYPE html>
		<html>
			<body style="font-family: sans-serif; background-color: #00C896; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background: white; padding: 20px; border-radius: 8px;">
					<h2 style="color: #10b981;">😢 À bientôt, {{.Name}}</h2>
					<p>Ton compte a bien été supprimé. Dis-nous ce qu'on aurait pu faire mieux.</p>
				</div>
			</body>
		</html>
	`)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct{ Name string }{Name: name})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
