package chat

import (
	"regenmon/internal/i18n"
	"regenmon/internal/pet"
)

// FeedingResponse is one canned line the pet says after being fed.
type FeedingResponse struct {
	ES string
	EN string
}

// Text returns the localized line.
func (f FeedingResponse) Text(locale i18n.Locale) string {
	if locale == i18n.LocaleEN {
		return f.EN
	}
	return f.ES
}

var feedingResponses = []FeedingResponse{
	{"¡Ñam ñam! Gracias por la comida 😋", "Nom nom! Thanks for the food 😋"},
	{"¡Delicioso! Justo lo que necesitaba 🍎", "Delicious! Just what I needed 🍎"},
	{"¡Mis niveles de energía están subiendo! ⚡", "My energy levels are rising! ⚡"},
	{"¡Burp! Perdón... estaba muy rico 😳", "Burp! Excuse me... that was tasty 😳"},
	{"¡Eres el mejor cuidador del mundo! 💖", "You are the best caretaker ever! 💖"},
	{"¡Crunch, crunch! ¡Qué crujiente! 🍪", "Crunch, crunch! So crunchy! 🍪"},
	{"Ahora me siento mucho más fuerte 💪", "I feel much stronger now 💪"},
	{"¡Guau! Eso sabía a gloria ✨", "Wow! Tasted like heaven ✨"},
	{"Barriga llena, corazón contento 😊", "Full tummy, happy heart 😊"},
	{"¡Más! ¡Quiero más! (Por favor) 🤤", "More! I want more! (Please) 🤤"},
	{"Cargando baterías... ¡Listo! 🔋", "Charging batteries... Ready! 🔋"},
	{"¡Glup, glup! Gracias humano 🥤", "Gulp, gulp! Thank you human 🥤"},
	{"¡Sabe a rayos y centellas! ¡Me encanta! ⚡", "Tastes like thunder and lightning! I love it! ⚡"},
	{"Me rugían las tripas, gracias 🦁", "My stomach was growling, thanks 🦁"},
	{"¡Yupi! ¡Hora de comer! 🎉", "Yay! Snack time! 🎉"},
	{"Procesando nutrientes... Completado ✅", "Processing nutrients... Completed ✅"},
	{"¡Ahhh! Eso estuvo refrescante 🍃", "Ahhh! That was refreshing 🍃"},
	{"¿Es mi cumpleaños? ¡Qué rico! 🎂", "Is it my birthday? So yummy! 🎂"},
	{"¡Munch, munch! No puedo hablar, estoy comiendo 🤐", "Munch, munch! Can't talk, eating 🤐"},
	{"¡Energía al 100%! Vamos a jugar 🚀", "100% Energy! Let's play 🚀"},
	{"Eres muy amable conmigo 🥺", "You are so kind to me 🥺"},
	{"¡Combustible para la aventura! 🗺️", "Fuel for adventure! 🗺️"},
	{"¡Slurp! ¡Hasta la última gota! 💧", "Slurp! Every last drop! 💧"},
	{"Me siento un poco más grande ahora 📈", "I feel a little bit bigger now 📈"},
	{"¡Excelente elección, chef! 👨🍳", "Excellent choice, chef! 👨🍳"},
	{"Mis circuitos están felices 🤖", "My circuits are happy 🤖"},
	{"¡Qué buen sabor! ⭐⭐⭐⭐⭐", "Such great flavor! ⭐⭐⭐⭐⭐"},
	{"¡Pum! ¡Estallido de sabor! 💥", "Boom! Flavor explosion! 💥"},
	{"Ahora tengo sueño... zzz 😴", "Now I am sleepy... zzz 😴"},
	{"¡Gracias! Te quiero mucho ❤️", "Thanks! Love you lots ❤️"},
}

// RandomFeedingResponse picks one of the canned post-meal lines.
func RandomFeedingResponse(locale i18n.Locale) string {
	return feedingResponses[pet.RandIntn(len(feedingResponses))].Text(locale)
}
