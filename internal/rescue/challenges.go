package rescue

import "regenmon/internal/i18n"

// Challenge is one bilingual trivia question from the rescue pool.
type Challenge struct {
	ID         int
	Category   string
	QuestionES string
	QuestionEN string
	AnswerES   string
	AnswerEN   string
}

// Question returns the localized question text.
func (c Challenge) Question(locale i18n.Locale) string {
	if locale == i18n.LocaleEN {
		return c.QuestionEN
	}
	return c.QuestionES
}

// Answer returns the localized expected answer.
func (c Challenge) Answer(locale i18n.Locale) string {
	if locale == i18n.LocaleEN {
		return c.AnswerEN
	}
	return c.AnswerES
}

// Challenges is the fixed question pool. Aimed at young players; answers
// are single words so the substring match stays forgiving.
var Challenges = []Challenge{
	{1, "colors", "¿De qué color es el sol?", "What color is the sun?", "amarillo", "yellow"},
	{2, "colors", "¿De qué color es el cielo en un día claro?", "What color is the sky on a clear day?", "azul", "blue"},
	{3, "colors", "¿De qué color es una manzana madura?", "What color is a ripe apple?", "rojo", "red"},
	{4, "colors", "¿De qué color es el pasto?", "What color is the grass?", "verde", "green"},
	{5, "colors", "¿De qué color es la nieve?", "What color is snow?", "blanco", "white"},
	{6, "colors", "¿De qué color es el carbón?", "What color is coal?", "negro", "black"},
	{7, "colors", "¿De qué color es una naranja?", "What color is an orange?", "naranja", "orange"},
	{8, "colors", "¿Qué color obtienes si mezclas rojo y azul?", "What color do you get if you mix red and blue?", "morado", "purple"},
	{9, "colors", "¿De qué color son las nubes de lluvia?", "What color are rain clouds?", "gris", "grey"},
	{10, "colors", "¿De qué color es el chocolate?", "What color is chocolate?", "cafe", "brown"},
	{11, "math", "¿Cuánto es 1 + 1?", "How much is 1 + 1?", "2", "2"},
	{12, "math", "¿Cuántos dedos tienes en una mano?", "How many fingers do you have on one hand?", "5", "5"},
	{13, "math", "¿Cuántas patas tiene un perro?", "How many legs does a dog have?", "4", "4"},
	{14, "math", "¿Cuánto es 5 - 2?", "How much is 5 - 2?", "3", "3"},
	{15, "math", "¿Cuántas ruedas tiene una bicicleta?", "How many wheels does a bicycle have?", "2", "2"},
	{16, "math", "¿Cuánto es 2 + 2?", "How much is 2 + 2?", "4", "4"},
	{17, "math", "¿Cuántos ojos tienes?", "How many eyes do you have?", "2", "2"},
	{18, "math", "¿Cuánto es 10 - 5?", "How much is 10 - 5?", "5", "5"},
	{19, "math", "¿Qué número viene después del 9?", "What number comes after 9?", "10", "10"},
	{20, "math", "¿Cuántos días tiene una semana?", "How many days are in a week?", "7", "7"},
	{21, "animals", "¿Qué animal dice 'miau'?", "What animal says 'meow'?", "gato", "cat"},
	{22, "animals", "¿Qué animal dice 'guau'?", "What animal says 'woof'?", "perro", "dog"},
	{23, "animals", "¿Qué animal nos da leche?", "What animal gives us milk?", "vaca", "cow"},
	{24, "animals", "¿Qué animal tiene una trompa larga?", "What animal has a long trunk?", "elefante", "elephant"},
	{25, "animals", "¿Quién es el rey de la selva?", "Who is the king of the jungle?", "leon", "lion"},
	{26, "animals", "¿Qué animal vuela y tiene plumas?", "What animal flies and has feathers?", "pajaro", "bird"},
	{27, "animals", "¿Qué animal vive en el agua y nada?", "What animal lives in water and swims?", "pez", "fish"},
	{28, "animals", "¿Qué animal come bananas y trepa árboles?", "What animal eats bananas and climbs trees?", "mono", "monkey"},
	{29, "animals", "¿Qué animal es rosado y tiene la cola rizada?", "What animal is pink and has a curly tail?", "cerdo", "pig"},
	{30, "animals", "¿Qué animal tiene el cuello muy largo?", "What animal has a very long neck?", "jirafa", "giraffe"},
	{31, "shapes", "¿Qué forma tiene una pelota?", "What shape is a ball?", "circulo", "circle"},
	{32, "shapes", "¿Qué forma tiene una caja cuadrada?", "What shape is a square box?", "cuadrado", "square"},
	{33, "shapes", "¿Qué forma tiene una rebanada de pizza?", "What shape is a slice of pizza?", "triangulo", "triangle"},
	{34, "shapes", "¿Qué forma tiene un huevo?", "What shape is an egg?", "ovalo", "oval"},
	{35, "shapes", "¿Qué forma vemos en el cielo de noche con 5 puntas?", "What shape with 5 points do we see in the night sky?", "estrella", "star"},
	{36, "body", "¿Con qué parte del cuerpo ves?", "What body part do you see with?", "ojos", "eyes"},
	{37, "body", "¿Con qué parte del cuerpo hueles?", "What body part do you smell with?", "nariz", "nose"},
	{38, "body", "¿Con qué parte del cuerpo caminas?", "What body part do you walk with?", "pies", "feet"},
	{39, "body", "¿Qué usas para escuchar?", "What do you use to hear?", "oidos", "ears"},
	{40, "body", "¿Qué tienes dentro de la boca para masticar?", "What is inside your mouth for chewing?", "dientes", "teeth"},
	{41, "food", "¿Qué fruta es amarilla y curva?", "What fruit is yellow and curved?", "banana", "banana"},
	{42, "food", "¿Qué bebida blanca viene de la vaca?", "What white drink comes from a cow?", "leche", "milk"},
	{43, "food", "¿Qué vegetal comen los conejos?", "What vegetable do rabbits eat?", "zanahoria", "carrot"},
	{44, "food", "¿Qué alimento ponen las gallinas?", "What food do chickens lay?", "huevo", "egg"},
	{45, "food", "¿Qué fruta es roja por dentro y verde por fuera?", "What fruit is red inside and green outside?", "sandia", "watermelon"},
	{46, "nature", "¿Qué cae del cielo cuando llueve?", "What falls from the sky when it rains?", "agua", "water"},
	{47, "nature", "¿Qué sale por la mañana y nos da calor?", "What comes up in the morning and warms us?", "sol", "sun"},
	{48, "nature", "¿Qué sale por la noche y brilla en el cielo?", "What comes out at night and shines in the sky?", "luna", "moon"},
	{49, "nature", "¿Dónde viven los peces?", "Where do fish live?", "mar", "sea"},
	{50, "nature", "¿Qué crece en el suelo y es verde?", "What grows on the ground and is green?", "pasto", "grass"},
	{51, "objects", "¿Qué usas para escribir en papel?", "What do you use to write on paper?", "lapiz", "pencil"},
	{52, "objects", "¿Qué usas para cortar papel?", "What do you use to cut paper?", "tijeras", "scissors"},
	{53, "objects", "¿Qué usas para protegerte de la lluvia?", "What do you use to protect yourself from rain?", "paraguas", "umbrella"},
	{54, "objects", "¿Dónde duermes por la noche?", "Where do you sleep at night?", "cama", "bed"},
	{55, "objects", "¿Qué usas para abrir una puerta?", "What do you use to open a door?", "llave", "key"},
	{56, "letters", "¿Cuál es la primera letra del alfabeto?", "What is the first letter of the alphabet?", "a", "a"},
	{57, "letters", "¿Qué letra viene después de la B?", "What letter comes after B?", "c", "c"},
	{58, "letters", "¿Cuál es la última letra del alfabeto?", "What is the last letter of the alphabet?", "z", "z"},
	{59, "letters", "¿Con qué letra empieza 'Mamá'?", "What letter does 'Mom' start with?", "m", "m"},
	{60, "letters", "¿Con qué letra empieza 'Papá'?", "What letter does 'Dad' start with?", "p", "d"},
	{61, "time", "¿Qué día viene después del lunes?", "What day comes after Monday?", "martes", "tuesday"},
	{62, "time", "¿En qué mes es Navidad?", "In which month is Christmas?", "diciembre", "december"},
	{63, "time", "¿Cuántas horas tiene un día?", "How many hours are in a day?", "24", "24"},
	{64, "time", "¿Qué día es fin de semana junto con el sábado?", "What day is the weekend along with Saturday?", "domingo", "sunday"},
	{65, "time", "¿Cuándo sale la luna, de día o de noche?", "When does the moon come out, day or night?", "noche", "night"},
	{66, "family", "¿Cómo se llama la madre de tu madre?", "What do you call your mother's mother?", "abuela", "grandmother"},
	{67, "family", "¿Cómo se llama el hermano de tu padre?", "What do you call your father's brother?", "tio", "uncle"},
	{68, "family", "¿Quién es el hijo de tus padres?", "Who is the son of your parents?", "yo", "me"},
	{69, "transport", "¿Qué vehículo va por las vías del tren?", "What vehicle goes on train tracks?", "tren", "train"},
	{70, "transport", "¿Qué vehículo vuela por el aire?", "What vehicle flies in the air?", "avion", "airplane"},
	{71, "transport", "¿Qué vehículo flota en el agua?", "What vehicle floats on water?", "barco", "boat"},
	{72, "transport", "¿Cuántas ruedas tiene un coche?", "How many wheels does a car have?", "4", "4"},
	{73, "clothing", "¿Qué te pones en los pies antes de los zapatos?", "What do you put on your feet before shoes?", "medias", "socks"},
	{74, "clothing", "¿Qué te pones en la cabeza cuando hace frío?", "What do you put on your head when it's cold?", "gorro", "hat"},
	{75, "clothing", "¿Qué usas en las manos cuando hace frío?", "What do you wear on your hands when it's cold?", "guantes", "gloves"},
	{76, "home", "¿Dónde cocinas la comida?", "Where do you cook food?", "cocina", "kitchen"},
	{77, "home", "¿Qué usas para lavarte las manos?", "What do you use to wash your hands?", "jabon", "soap"},
	{78, "home", "¿Dónde guardas la leche para que esté fría?", "Where do you keep milk to stay cold?", "nevera", "fridge"},
	{79, "opposites", "¿Qué es lo opuesto a 'arriba'?", "What is the opposite of 'up'?", "abajo", "down"},
	{80, "opposites", "¿Qué es lo opuesto a 'grande'?", "What is the opposite of 'big'?", "pequeño", "small"},
	{81, "opposites", "¿Qué es lo opuesto a 'caliente'?", "What is the opposite of 'hot'?", "frio", "cold"},
	{82, "opposites", "¿Qué es lo opuesto a 'rápido'?", "What is the opposite of 'fast'?", "lento", "slow"},
	{83, "math", "¿Qué número viene antes del 2?", "What number comes before 2?", "1", "1"},
	{84, "math", "¿Cuánto es 3 + 0?", "How much is 3 + 0?", "3", "3"},
	{85, "math", "¿Cuál es el primer número que contamos?", "What is the first number we count?", "1", "1"},
	{86, "animals", "¿Qué insecto hace miel?", "What insect makes honey?", "abeja", "bee"},
	{87, "animals", "¿Qué animal tiene rayas negras y blancas?", "What animal has black and white stripes?", "cebra", "zebra"},
	{88, "animals", "¿Qué animal salta y es verde?", "What animal jumps and is green?", "rana", "frog"},
	{89, "nature", "¿De qué están hechos los muñecos de nieve?", "What are snowmen made of?", "nieve", "snow"},
	{90, "nature", "¿Qué da luz y calor al fuego?", "What gives light and heat in a fire?", "fuego", "fire"},
	{91, "objects", "¿Qué usas para beber agua?", "What do you use to drink water?", "vaso", "glass"},
	{92, "objects", "¿Qué usas para peinarte el cabello?", "What do you use to comb your hair?", "peine", "comb"},
	{93, "objects", "¿Qué usas para llamar por teléfono?", "What do you use to make a phone call?", "celular", "phone"},
	{94, "colors", "¿De qué color es la fresa?", "What color is a strawberry?", "rojo", "red"},
	{95, "colors", "¿De qué color es un limón?", "What color is a lemon?", "verde", "green"},
	{96, "math", "¿Qué número parece un círculo?", "What number looks like a circle?", "0", "0"},
	{97, "math", "¿Qué número viene después del 1?", "What number comes after 1?", "2", "2"},
	{98, "math", "¿Cuánto es 10 + 0?", "How much is 10 + 0?", "10", "10"},
	{99, "general", "¿Cómo se llama el planeta donde vivimos?", "What is the name of the planet we live on?", "tierra", "earth"},
	{100, "general", "¿Qué idioma hablamos en España?", "What language do they speak in Spain?", "español", "spanish"},
}
