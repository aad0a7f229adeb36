// messages.go contains message templates for Telegram.

package telegram

// Error messages.
const (
	msgInternalError       = "কিছু একটা ভুল হয়েছে। একটু পরে আবার চেষ্টা করুন।"
	msgProviderUnavailable = "তথ্য সরবরাহকারী সার্ভারে পৌঁছানো যাচ্ছে না। একটু পরে আবার চেষ্টা করুন।"
	msgPlaybackFailed      = "অডিও চালানো যায়নি। ইন্টারনেট সংযোগ দেখে আবার শুরু করুন।"
	msgLocationUnavailable = "আপনার অবস্থান জানা নেই। 📍 বোতাম চেপে অবস্থান পাঠান।"
	msgInvalidName         = "নামটি খালি বা অনেক লম্বা। অনুগ্রহ করে ৬৪ অক্ষরের মধ্যে একটি নাম লিখুন।"
	msgInvalidLocation     = "অবস্থানটি সঠিক নয়।"
	msgSurahNotFound       = "কোনো সূরা পাওয়া যায়নি। সূরার নম্বর (১–১১৪) বা নাম লিখুন, যেমন: /quran 36 বা /quran yasin"
	msgHadithNotFound      = "এই নামে কোনো হাদিস গ্রন্থ পাওয়া যায়নি।"
	msgDuaNotFound         = "কোনো দোয়া পাওয়া যায়নি।"
	msgUnknownCommand      = "অজানা কমান্ড। সব কমান্ড দেখতে /help লিখুন।"
)

// Notices shown next to degraded answers.
const (
	noticeStaleSchedule   = "⚠️ সার্ভার থেকে আজকের সময়সূচি আনা যায়নি, সর্বশেষ সংরক্ষিত সময়সূচি দেখানো হচ্ছে।"
	noticeDefaultLocation = "📍 অবস্থান জানা না থাকায় ঢাকার সময় দেখানো হচ্ছে। সঠিক সময়ের জন্য অবস্থান পাঠান।"
	noticeNoCompass       = "🧭 টেলিগ্রামে কম্পাস নেই: ফোনের উপরের দিক উত্তরে রেখে ডানদিকে ঘুরুন।"
	noticeApproxQibla     = "📍 অবস্থান জানা নেই, তাই আনুমানিক দিক দেখানো হচ্ছে।"
)

const (
	msgWelcome = "<b>আসসালামু আলাইকুম ওয়া রাহমাতুল্লাহ</b> 🌙\n\n" +
		"নূরুল ইসলাম বটে আপনাকে স্বাগতম। এখানে পাবেন নামাজের সময়, কিবলার দিক, " +
		"কুরআন তিলাওয়াত, হাদিস, দোয়া ও তাসবীহ।"

	msgAskName = "শুরু করার আগে বলুন, আপনাকে কী নামে ডাকব? ✍️"

	msgAskNewName = "নতুন নামটি লিখুন ✍️"

	msgAskLocation = "নিচের 📍 বোতাম চেপে আপনার অবস্থান পাঠান। " +
		"এতে নামাজের সঠিক সময় ও কিবলার দিক জানা যাবে।"

	msgHelp = "<b>কমান্ডসমূহ</b>\n\n" +
		"/start — হোম স্ক্রিন\n" +
		"/prayer — আজকের নামাজের সময়\n" +
		"/qibla — কিবলার দিক\n" +
		"/quran [নম্বর | নাম] — কুরআন পড়ুন ও শুনুন\n" +
		"/hadith [গ্রন্থ] — হাদিস\n" +
		"/dua [শব্দ] — দোয়া\n" +
		"/tasbih — তাসবীহ কাউন্টার\n" +
		"/settings — সেটিংস\n" +
		"/reset — সব তথ্য মুছে ফেলুন\n\n" +
		"📍 অবস্থান পাঠালে নামাজের সময় ও কিবলা আপনার এলাকা অনুযায়ী হবে।"

	msgResetConfirm   = "⚠️ আপনার সব তথ্য (নাম, সেটিংস, তাসবীহ, সর্বশেষ পঠিত সূরা) মুছে যাবে। নিশ্চিত?"
	msgResetDone      = "✅ সব তথ্য মুছে ফেলা হয়েছে। নতুন করে শুরু করতে /start লিখুন।"
	msgResetCancelled = "বাতিল করা হয়েছে।"

	msgPlayerStale   = "এই প্লেয়ারটি পুরনো"
	msgPlayerStopped = "⏹ তিলাওয়াত বন্ধ হয়েছে।"
	msgTasbihReset   = "রিসেট হয়েছে"
)

// Button labels shared by several keyboards.
const (
	btnHome     = "🏠 হোম"
	btnPrayer   = "🕌 নামাজের সময়"
	btnQibla    = "🧭 কিবলা"
	btnQuran    = "📖 কুরআন"
	btnHadith   = "📜 হাদিস"
	btnDua      = "🤲 দোয়া"
	btnTasbih   = "📿 তাসবীহ"
	btnSettings = "⚙️ সেটিংস"
	btnRefresh  = "🔄 হালনাগাদ"
	btnLocation = "📍 অবস্থান পাঠান"
	btnPrev     = "◀️ আগের"
	btnNext     = "পরের ▶️"
)
