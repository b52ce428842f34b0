package i18n

import "github.com/example/cropdoctor/internal/models"

var bundles = map[models.Language]*Bundle{
	models.LangEnglish: {
		AppTitle:     "Crop Doctor",
		Greeting:     "Good Morning, Farmer",
		Online:       "Active",
		Weather:      WeatherText{Humidity: "Humidity", Rain: "Chance Rain", Locating: "Locating..."},
		ScanAction:   "Scan Plant",
		ScanDesc:     "Diagnose diseases instantly",
		MarketPrices: "Market Trends",
		AskExpert:    "Agri Expert",
		ExpertDesc:   "Voice Assistant",
		Nav:          NavText{Home: "Home", Scan: "Scan", Community: "Community", Market: "Market", Rental: "Rentals"},
		Market: MarketText{
			SellTitle: "Marketplace", SellDesc: "Sell harvest directly to buyers",
			RentTitle: "Equipment Rental", RentDesc: "Share & rent farming tools",
		},
		Community: CommunityText{Title: "Farmer Community", Desc: "Connect with experts & peers"},
		Chat: ChatText{
			Placeholder: "Ask a question...",
			Welcome:     "Namaste! I am your Agri-Assistant. Ask me anything about your crops.",
			Listening:   "Listening...",
		},
		Diagnosis: DiagnosisText{
			Title: "AI Diagnosis", Confidence: "Confidence Match",
			HealthyTitle: "Excellent Health!",
			HealthyDesc:  "Your crop looks great. Keep up the good work maintaining healthy soil and watering schedules.",
		},
		Common: CommonText{
			Contact: "Call Now", Details: "View Details", ScanAnother: "Scan Another Plant",
			Treatments: "Treatment Plan", Prevention: "Prevention Guide",
			Analyzing: "Analyzing leaf health...", NoImage: "Ready to Scan",
			TakePhoto:  "Capture a clear photo of the affected leaf for instant AI diagnosis.",
			OpenCamera: "Start Camera",
		},
	},
	models.LangHindi: {
		AppTitle:     "फसल डॉक्टर",
		Greeting:     "नमस्ते, किसान भाई",
		Online:       "सक्रिय",
		Weather:      WeatherText{Humidity: "नमी", Rain: "बारिश की संभावना", Locating: "खोज रहा है..."},
		ScanAction:   "फसल जांचें",
		ScanDesc:     "बीमारियों का तुरंत पता लगाएं",
		MarketPrices: "मंडी भाव",
		AskExpert:    "कृषि विशेषज्ञ",
		ExpertDesc:   "वॉयस असिस्टेंट",
		Nav:          NavText{Home: "होम", Scan: "स्कैन", Community: "समुदाय", Market: "बाज़ार", Rental: "किराये"},
		Market: MarketText{
			SellTitle: "बाज़ार", SellDesc: "सीधे खरीदारों को फसल बेचें",
			RentTitle: "उपकरण किराये", RentDesc: "कृषि उपकरण साझा करें",
		},
		Community: CommunityText{Title: "किसान समुदाय", Desc: "विशेषज्ञों से जुड़ें"},
		Chat: ChatText{
			Placeholder: "प्रश्न पूछें...",
			Welcome:     "नमस्ते! मैं आपका कृषि सहायक हूं। अपनी फसलों के बारे में कुछ भी पूछें।",
			Listening:   "सुन रहा हूँ...",
		},
		Diagnosis: DiagnosisText{
			Title: "AI निदान", Confidence: "सटीकता",
			HealthyTitle: "फसल स्वस्थ है!",
			HealthyDesc:  "आपकी फसल बहुत अच्छी दिख रही है। अच्छी देखभाल जारी रखें।",
		},
		Common: CommonText{
			Contact: "संपर्क करें", Details: "विवरण देखें", ScanAnother: "दूसरा पौधा स्कैन करें",
			Treatments: "उपचार योजना", Prevention: "बचाव के उपाय",
			Analyzing: "फसल की जांच हो रही है...", NoImage: "स्कैन के लिए तैयार",
			TakePhoto:  "तुरंत निदान पाने के लिए प्रभावित पत्ती की साफ फोटो लें।",
			OpenCamera: "कैमरा खोलें",
		},
	},
	models.LangMarathi: {
		AppTitle:     "पीक डॉक्टर",
		Greeting:     "नमस्कार, शेतकरी दादा",
		Online:       "सक्रिय",
		Weather:      WeatherText{Humidity: "आर्द्रता", Rain: "पावसाची शक्यता", Locating: "शोधत आहे..."},
		ScanAction:   "पीक तपासणी",
		ScanDesc:     "रोगांचे त्वरित निदान करा",
		MarketPrices: "बाजार भाव",
		AskExpert:    "कृषी तज्ञ",
		ExpertDesc:   "व्हॉइस असिस्टंट",
		Nav:          NavText{Home: "होम", Scan: "स्कॅन", Community: "समुदाय", Market: "बाजार", Rental: "भाड्याने"},
		Market: MarketText{
			SellTitle: "बाजारपेठ", SellDesc: "थेट खरेदीदारांना विक्री करा",
			RentTitle: "उपकरणे भाड्याने", RentDesc: "शेती अवजारे भाड्याने घ्या/द्या",
		},
		Community: CommunityText{Title: "शेतकरी समुदाय", Desc: "तज्ञांशी चर्चा करा"},
		Chat: ChatText{
			Placeholder: "प्रश्न विचारा...",
			Welcome:     "नमस्कार! मी तुमचा कृषी सहाय्यक आहे. मला तुमच्या पिकांबद्दल काहीही विचारा.",
			Listening:   "ऐकत आहे...",
		},
		Diagnosis: DiagnosisText{
			Title: "AI निदान", Confidence: "खात्री",
			HealthyTitle: "पीक निरोगी आहे!",
			HealthyDesc:  "तुमचे पीक छान दिसत आहे. चांगली निगा राखणे चालू ठेवा.",
		},
		Common: CommonText{
			Contact: "संपर्क साधा", Details: "तपशील पहा", ScanAnother: "दुसरे झाड स्कॅन करा",
			Treatments: "उपचार पद्धती", Prevention: "प्रतिबंधात्मक उपाय",
			Analyzing: "तपासणी सुरू आहे...", NoImage: "स्कॅनसाठी तयार",
			TakePhoto:  "त्वरित निदानासाठी रोगग्रस्त पानाचा स्पष्ट फोटो घ्या.",
			OpenCamera: "कॅमेरा चालू करा",
		},
	},
	models.LangKannada: {
		AppTitle:     "ಬೆಳೆ ವೈದ್ಯ",
		Greeting:     "ನಮಸ್ಕಾರ, ರೈತ ಮಿತ್ರ",
		Online:       "ಸಕ್ರಿಯ",
		Weather:      WeatherText{Humidity: "ತೇವಾಂಶ", Rain: "ಮಳೆ ಸಾಧ್ಯತೆ", Locating: "ಪತ್ತೆ ಮಾಡಲಾಗುತ್ತಿದೆ..."},
		ScanAction:   "ಬೆಳೆ ಪರೀಕ್ಷಿಸಿ",
		ScanDesc:     "ರೋಗಗಳನ್ನು ತಕ್ಷಣ ಗುರುತಿಸಿ",
		MarketPrices: "ಮಾರುಕಟ್ಟೆ ದರಗಳು",
		AskExpert:    "ತಜ್ಞರ ಸಲಹೆ",
		ExpertDesc:   "ಧ್ವನಿ ಮೂಲಕ ಸಹಾಯ",
		Nav:          NavText{Home: "ಮುಖಪುಟ", Scan: "ಸ್ಕ್ಯಾನ್", Community: "ಸಮುದಾಯ", Market: "ವ್ಯಾಪಾರ", Rental: "ಬಾಡಿಗೆ"},
		Market: MarketText{
			SellTitle: "ಬೆಳೆ ಮಾರಾಟ", SellDesc: "ನೇರವಾಗಿ ಖರೀದಿದಾರರನ್ನು ಸಂಪರ್ಕಿಸಿ",
			RentTitle: "ಯಂತ್ರ ಬಾಡಿಗೆ", RentDesc: "ಕೃಷಿ ಉಪಕರಣಗಳು ಲಭ್ಯ",
		},
		Community: CommunityText{Title: "ಕೃಷಿ ಮಿತ್ರರು", Desc: "ಅನುಭವಿ ರೈತರೊಂದಿಗೆ ಚರ್ಚಿಸಿ"},
		Chat: ChatText{
			Placeholder: "ಪ್ರಶ್ನೆ ಕೇಳಿ...",
			Welcome:     "ನಮಸ್ಕಾರ! ನಾನು ನಿಮ್ಮ ಕೃಷಿ ಸಹಾಯಕ. ಬೆಳೆಗಳ ಬಗ್ಗೆ ಏನೇ ಪ್ರಶ್ನೆ ಇದ್ದರೂ ಕೇಳಿ.",
			Listening:   "ಆಲಿಸಲಾಗುತ್ತಿದೆ...",
		},
		Diagnosis: DiagnosisText{
			Title: "AI ರೋಗ ನಿರ್ಣಯ", Confidence: "ನಿಖರತೆ",
			HealthyTitle: "ಬೆಳೆ ಆರೋಗ್ಯಕರವಾಗಿದೆ!",
			HealthyDesc:  "ನಿಮ್ಮ ಬೆಳೆ ಚೆನ್ನಾಗಿ ಕಾಣುತ್ತಿದೆ. ಉತ್ತಮ ನಿರ್ವಹಣೆಯನ್ನು ಮುಂದುವರಿಸಿ.",
		},
		Common: CommonText{
			Contact: "ಸಂಪರ್ಕಿಸಿ", Details: "ವಿವರಗಳು", ScanAnother: "ಮತ್ತೊಂದು ಸಸ್ಯ ಪರೀಕ್ಷಿಸಿ",
			Treatments: "ಚಿಕಿತ್ಸೆಗಳು", Prevention: "ತಡೆಗಟ್ಟುವ ಕ್ರಮಗಳು",
			Analyzing: "ವಿಶ್ಲೇಷಿಸಲಾಗುತ್ತಿದೆ...", NoImage: "ಫೋಟೋ ಆಯ್ಕೆಮಾಡಿ",
			TakePhoto:  "ರೋಗದ ನಿಖರ ಮಾಹಿತಿಗಾಗಿ ಸ್ಪಷ್ಟ ಫೋಟೋ ತೆಗೆಯಿರಿ.",
			OpenCamera: "ಕ್ಯಾಮೆರಾ ತೆರೆಯಿರಿ",
		},
	},
}
